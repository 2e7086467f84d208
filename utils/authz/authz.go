// Package authz decides which roles may call which routes.
package authz

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// role_member is granted to every signed-in account.
const roleMember = "role_member"

var policies = [][]string{
	{roleMember, "/accounts/profile", "GET"},
	{roleMember, "/listings/saved", "GET"},
	{roleMember, "/listings/:id/save", "POST"},
	{roleMember, "/listings/:id/unsave", "POST"},

	{subject(constant.RoleAgent), "/listings", "POST"},
	{subject(constant.RoleAgent), "/listings/:id", "PUT"},
	{subject(constant.RoleAgent), "/listings/:id", "DELETE"},
	{subject(constant.RoleAgent), "/listings/:id/images/:imageID", "DELETE"},

	{subject(constant.RoleCustomer), "/listings/:id/reviews", "POST"},
}

var groupings = [][]string{
	{subject(constant.RoleCustomer), roleMember},
	{subject(constant.RoleAgent), roleMember},
}

// publicRoutes need no credentials at all.
var publicRoutes = [][2]string{
	{"POST", "/accounts/register"},
	{"POST", "/accounts/register/agent"},
	{"POST", "/accounts/resend-confirmation"},
	{"POST", "/accounts/confirm"},
	{"POST", "/accounts/token"},
	{"GET", "/listings"},
	{"GET", "/listings/search"},
	{"GET", "/listings/:id"},
	{"GET", "/images/:key"},
}

type Authorizer struct {
	enforcer *casbin.Enforcer
}

func New() (*Authorizer, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}
	return &Authorizer{enforcer: e}, nil
}

// Allowed reports whether role may call method on path.
func (a *Authorizer) Allowed(role constant.Role, path, method string) (bool, error) {
	return a.enforcer.Enforce(subject(role), path, method)
}

// IsPublic reports whether the route is open to anonymous callers.
// "/listings/saved" is never public even though it matches "/listings/:id".
func IsPublic(path, method string) bool {
	if path == "/listings/saved" {
		return false
	}
	for _, r := range publicRoutes {
		if r[0] == method && util.KeyMatch2(path, r[1]) {
			return true
		}
	}
	return false
}

func subject(role constant.Role) string {
	return "role_" + string(role)
}
