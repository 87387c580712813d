package services

import (
	"github.com/you/rentalfront/domain"
)

// CapabilityServiceImpl implements domain.CapabilityService over a casbin
// enforcer. The capability table is static; this service only answers
// queries against it.
type CapabilityServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewCapabilityService creates a new capability service.
func NewCapabilityService(enforcer domain.CasbinEnforcer) domain.CapabilityService {
	return &CapabilityServiceImpl{enforcer: enforcer}
}

// Can implements domain.CapabilityService.
func (s *CapabilityServiceImpl) Can(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}

// CapabilitiesFor implements domain.CapabilityService. Inherited
// permissions are included, so ADMIN reports the STAFF set as well.
func (s *CapabilityServiceImpl) CapabilitiesFor(role string) [][]string {
	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil
	}
	return perms
}

var _ domain.CapabilityService = (*CapabilityServiceImpl)(nil)
