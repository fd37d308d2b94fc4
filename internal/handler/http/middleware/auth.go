package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pertashop/backoffice-go/internal/handler/http/response"
)

// AuthRequired verifies the JWT found by jwtauth.Verifier and rejects
// anything that is not a valid access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid token type")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
