package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pertashop/backoffice-go/internal/domain/user"
	"github.com/pertashop/backoffice-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(role), true
}

// RequireAdmin allows admins and the owner through.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.Unauthorized(w, "Invalid or missing token")
			return
		}
		if role != user.RoleAdmin && role != user.RoleOwner {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOwner allows only the owner through.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.Unauthorized(w, "Invalid or missing token")
			return
		}
		if role != user.RoleOwner {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
