package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/goodways/goodways/shared/domain"
	internal_errors "github.com/goodways/goodways/shared/errors"
	jwt_internal "github.com/goodways/goodways/shared/jwt"
	"github.com/goodways/goodways/shared/logger"
	"github.com/goodways/goodways/shared/utils"
)

// Key to store the admin claims in the request context
type key int

const AdminClaimsKey key = 0

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// AdminOnly requires a valid admin token in the Authorization header.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Admin token required", StatusCode: http.StatusUnauthorized})
				return
			}

			admin, err := a.jwtService.DecodeToken(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			logger.Log.Info("admin request", "admin", admin.Name, "method", r.Method, "path", r.URL.Path)
			ctx := context.WithValue(r.Context(), AdminClaimsKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAdminFromContext(r *http.Request) *domain.Admin {
	admin, ok := r.Context().Value(AdminClaimsKey).(*domain.Admin)
	if !ok {
		return nil
	}
	return admin
}
