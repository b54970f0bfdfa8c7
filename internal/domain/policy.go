package domain

import (
	"strings"

	"github.com/google/uuid"

	"pustakdhaan/internal/models"
)

// Capability is a role-gated action.
type Capability string

// Role-gated capabilities.
const (
	CapManageDrives      Capability = "manage donation drives"
	CapManageSchools     Capability = "manage schools"
	CapAllocateBooks     Capability = "allocate books"
	CapViewAllDonations  Capability = "view all donations"
	CapUpdateDonations   Capability = "update donation status"
	CapViewUsers         Capability = "view users"
	CapManageAllocations Capability = "manage allocations"
)

var capabilityRoles = map[Capability][]models.Role{
	CapManageDrives:      {models.RoleAdmin},
	CapManageSchools:     {models.RoleAdmin},
	CapAllocateBooks:     {models.RoleAdmin},
	CapViewAllDonations:  {models.RoleAdmin},
	CapUpdateDonations:   {models.RoleAdmin, models.RoleCoordinator},
	CapViewUsers:         {models.RoleAdmin},
	CapManageAllocations: {models.RoleAdmin},
}

// Authorize checks that the identity's role grants the capability.
func Authorize(identity models.Identity, capability Capability) error {
	for _, role := range capabilityRoles[capability] {
		if identity.Role == role {
			return nil
		}
	}
	return Forbidden("access denied: %s requires role %s", capability, rolesOf(capability))
}

// AuthorizeOwner checks that the identity is the owner of a resource.
func AuthorizeOwner(identity models.Identity, ownerID uuid.UUID, action string) error {
	if identity.UserID != ownerID {
		return Forbidden("not authorized to %s", action)
	}
	return nil
}

func rolesOf(capability Capability) string {
	roles := capabilityRoles[capability]
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return strings.Join(names, " or ")
}
