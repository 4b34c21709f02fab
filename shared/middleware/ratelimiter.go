package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"

	internal_errors "github.com/goodways/goodways/shared/errors"
	"github.com/goodways/goodways/shared/middleware/ratelimiter"
	"github.com/goodways/goodways/shared/utils"
)

const MsgRateLimited = "Too many requests. Take a breath and try again shortly."

// RateLimit rejects requests whose identity has run out of tokens. Admin
// requests are never limited.
func RateLimit(rl *ratelimiter.Limiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetAdminFromContext(r) != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest})
				return
			}
			if !rl.Allow(identity) {
				if wait := rl.RetryAfter(identity); wait > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				}
				utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: MsgRateLimited, StatusCode: http.StatusTooManyRequests})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr.
// Forwarding headers are not trusted.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
