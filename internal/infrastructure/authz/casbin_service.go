// Package authz builds the casbin enforcer behind role gating. The policy
// set is the frontend capability table: role -> resource -> action. It is
// advisory UX gating only; the backend re-checks every call it receives.
package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// capabilityPolicies is the declarative capability table. One row per
// permitted (role, resource, action); evaluated once per request by the
// capability middleware.
var capabilityPolicies = [][]string{
	// Staff run the reservation workflow and the contract flow.
	{"STAFF", "reservations", "view"},
	{"STAFF", "reservations", "transition"},
	{"STAFF", "contracts", "view"},
	{"STAFF", "contracts", "edit"},
	{"STAFF", "profiles", "view"},
	{"STAFF", "profiles", "edit"},

	// Admin-only surfaces on top of the staff set.
	{"ADMIN", "employees", "view"},
	{"ADMIN", "employees", "edit"},
	{"ADMIN", "system-config", "edit"},

	// Partners see their branch's reservations and their own profile.
	{"PARTNER", "branch-reservations", "view"},

	// Guests and tenants manage their own reservations.
	{"TENANT", "my-reservations", "view"},
	{"TENANT", "my-reservations", "create"},
	{"TENANT", "my-reservations", "cancel"},
	{"GUEST", "my-reservations", "view"},
	{"GUEST", "my-reservations", "create"},
	{"GUEST", "my-reservations", "cancel"},
}

// sharedPolicies apply to every authenticated role.
var sharedPolicies = [][]string{
	{"dashboard", "view"},
	{"profile", "view"},
	{"profile", "edit"},
	{"system-config", "view"},
}

// roleGroups places ADMIN above STAFF so the staff capability set is
// inherited rather than duplicated.
var roleGroups = [][]string{
	{"ADMIN", "STAFF"},
}

var allRoles = []string{"GUEST", "TENANT", "PARTNER", "STAFF", "ADMIN"}

// CasbinService wraps the configured enforcer.
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds an enforcer from the embedded model and the
// static capability table. Policies live in the binary; there is no
// external policy store to load or save.
func NewCasbinService() (*CasbinService, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range capabilityPolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, role := range allRoles {
		for _, p := range sharedPolicies {
			if _, err := e.AddPolicy(role, p[0], p[1]); err != nil {
				return nil, err
			}
		}
	}
	for _, g := range roleGroups {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &CasbinService{E: e}, nil
}
