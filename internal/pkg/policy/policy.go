// Package policy holds role-based authorization rules. Functions here are pure.
package policy

import (
	"github.com/piresc/flexwork/internal/pkg/models"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed         bool
	DisallowedRoles []models.Role
}

// manageable maps a role held in a company to the roles its holder may grant there
var manageable = map[models.Role][]models.Role{
	models.RoleAdministrator: {models.RoleAdministrator, models.RoleLawyer},
}

// ManageableRoles returns the roles the holder of memberships may grant in companyID
func ManageableRoles(memberships []models.Membership, companyID string) []models.Role {
	seen := make(map[models.Role]bool)
	var roles []models.Role
	for _, m := range memberships {
		if m.CompanyID != companyID || !m.Active() {
			continue
		}
		for _, r := range manageable[m.Role] {
			if !seen[r] {
				seen[r] = true
				roles = append(roles, r)
			}
		}
	}
	return roles
}

// CanManageRoles checks every requested role. On deny DisallowedRoles lists each
// offending role once, in request order.
func CanManageRoles(memberships []models.Membership, companyID string, roles []models.Role) Decision {
	allowed := make(map[models.Role]bool)
	for _, r := range ManageableRoles(memberships, companyID) {
		allowed[r] = true
	}

	reported := make(map[models.Role]bool)
	var denied []models.Role
	for _, r := range roles {
		if allowed[r] || reported[r] {
			continue
		}
		reported[r] = true
		denied = append(denied, r)
	}

	// holding no manageable role at all is a denial even for an empty request
	return Decision{Allowed: len(allowed) > 0 && len(denied) == 0, DisallowedRoles: denied}
}

// IsAdministrator reports whether memberships include an active administrator role in companyID
func IsAdministrator(memberships []models.Membership, companyID string) bool {
	for _, m := range memberships {
		if m.CompanyID == companyID && m.Role == models.RoleAdministrator && m.Active() {
			return true
		}
	}
	return false
}
