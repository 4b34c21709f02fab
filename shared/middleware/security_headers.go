package middleware

import (
	"net/http"
)

// apiCSP forbids everything; responses are JSON and never rendered as pages.
const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// The API exposes no browser features.
const apiPermissions = "camera=(), microphone=(), geolocation=(), interest-cohort=()"

// SecurityHeaders sets the hardening headers on every response.
// isHTTPS adds Strict-Transport-Security.
func SecurityHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return SecurityHeadersWithCSP(isHTTPS, apiCSP)
}

// SecurityHeadersWithCSP is SecurityHeaders with a custom Content-Security-Policy.
// An empty csp omits the header.
func SecurityHeadersWithCSP(isHTTPS bool, csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			// Clickjacking; frame-ancestors covers modern browsers, this the rest
			headers.Set("X-Frame-Options", "DENY")

			// MIME sniffing would let a JSON body be run as script
			headers.Set("X-Content-Type-Options", "nosniff")

			// Post ids in the path are nobody's business
			headers.Set("Referrer-Policy", "no-referrer")

			headers.Set("Cross-Origin-Resource-Policy", "same-site")
			headers.Set("Permissions-Policy", apiPermissions)

			if csp != "" {
				headers.Set("Content-Security-Policy", csp)
			}

			// Moderation responses carry the token's view of the data and must not be cached
			if r.Header.Get("Authorization") != "" {
				headers.Set("Cache-Control", "no-store")
			}

			// HSTS only makes sense behind TLS
			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
