// Package authz is the permission model: a pure role-to-token lookup
// with no state of its own. A staff member holds exactly the permission
// set of their role.
package authz

import "bistro-pos/internal/models"

// PermissionSet flattens a role's grants for O(1) membership checks.
func PermissionSet(role models.Role) map[models.Permission]struct{} {
	set := make(map[models.Permission]struct{}, len(role.Permissions))
	for _, perm := range role.Permissions {
		set[perm] = struct{}{}
	}
	return set
}

// Allowed reports whether the staff member's role grants the permission.
// Inactive staff are never allowed anything.
func Allowed(staff models.Staff, roles []models.Role, perm models.Permission) bool {
	if staff.Status != models.StaffActive {
		return false
	}
	for _, role := range roles {
		if role.ID == staff.RoleID {
			_, ok := PermissionSet(role)[perm]
			return ok
		}
	}
	return false
}
