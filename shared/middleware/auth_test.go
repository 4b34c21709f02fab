package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goodways/goodways/shared/domain"
	jwt_internal "github.com/goodways/goodways/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminOnly(t *testing.T) {
	jwtService := jwt_internal.New("test_secret", time.Hour)
	token, err := jwtService.NewToken(domain.Admin{Name: "curator"})
	require.NoError(t, err)
	foreign, err := jwt_internal.New("other_secret", time.Hour).NewToken(domain.Admin{Name: "mallory"})
	require.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
		expectedAdmin  *domain.Admin
	}{
		{
			name:           "Valid admin token",
			authorization:  "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedAdmin:  &domain.Admin{Name: "curator"},
		},
		{
			name:           "No header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			authorization:  "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Signed with another key",
			authorization:  "Bearer " + foreign,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/v1/admin/posts/1", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()

			var seen *domain.Admin
			handler := NewAuth(jwtService).AdminOnly()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetAdminFromContext(r)
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAdmin, seen)
		})
	}
}

func TestGetAdminFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetAdminFromContext(req))
}
