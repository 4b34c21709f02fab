package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goodways/goodways/shared/domain"
	internal_errors "github.com/goodways/goodways/shared/errors"
	"github.com/goodways/goodways/shared/logger"
)

type JwtService interface {
	NewToken(admin domain.Admin) (string, error)
	DecodeToken(jwtStr string) (*domain.Admin, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(admin domain.Admin) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = admin.Name
	claims["admin"] = true
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

// DecodeToken verifies the signature and expiry and returns the admin the
// token was issued to. Tokens without the admin claim are rejected.
func (j *Jwt) DecodeToken(jwtStr string) (*domain.Admin, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	isAdmin, _ := claims["admin"].(bool)
	if !isAdmin {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Access denied. Only for admin", StatusCode: http.StatusForbidden}
	}
	name, _ := claims["sub"].(string)

	return &domain.Admin{Name: name}, nil
}
