package middleware

import (
	"net/http"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/pkg/response"
)

// RequireRole lets the request through when the caller carries any of the
// given roles. Must run after Authenticate.
func RequireRole(roles ...entity.RoleTag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := GetCallerFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !caller.Roles.HasAny(roles...) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDentistOrAdmin guards the dentist workspace
func RequireDentistOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDentist, entity.RoleAdmin)(next)
}

// RequirePatient guards booking writes. Admins pass as well.
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient, entity.RoleAdmin)(next)
}
