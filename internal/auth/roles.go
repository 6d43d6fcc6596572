package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	apperrors "github.com/spec-kit/maintenance-dashboard/pkg/util/errorutil"
)

// MaintenanceRoles may open the maintenance dashboard.
var MaintenanceRoles = []domain.StaffRole{
	domain.StaffRoleMaintenance,
	domain.StaffRoleTeamLead,
	domain.StaffRoleAdmin,
}

// RequireStaffRole ensures the staff principal has one of the allowed roles.
func RequireStaffRole(allowed ...domain.StaffRole) fiber.Handler {
	allowedSet := make(map[domain.StaffRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.SubjectType != domain.SubjectTypeStaff || principal.Role == nil {
			return apperrors.NewForbidden("staff role required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[*principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
