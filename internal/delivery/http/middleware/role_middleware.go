package middleware

import (
	"net/http"

	"petcare-facility-api/internal/domain/entity"
	"petcare-facility-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireAdminOrStaff guards the management surface: facility setup,
// healthcare records, deletes.
func RequireAdminOrStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff)(next)
}

// RequireAdminOrStaffOrUser guards read endpoints that customers may call.
func RequireAdminOrStaffOrUser(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff, entity.RoleIDUser)(next)
}
