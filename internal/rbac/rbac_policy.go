package rbac

import "strings"

type Role string

const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

const (
	ResourceEmployee = "employee"
	ResourceCategory = "category"
	ResourceWriteUp  = "writeup"
	ResourceStanding = "standing"
	ResourceUser     = "user"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	// ActionBrowse is the cross-employee write-up browser.
	ActionBrowse = "browse"
)

// Roles in ascending privilege.
func Roles() []Role {
	return []Role{RoleViewer, RoleManager, RoleAdmin}
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles() {
		if r == known {
			return r, true
		}
	}
	return "", false
}

func (r Role) Rank() int {
	for i, known := range Roles() {
		if r == known {
			return i
		}
	}
	return -1
}

const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// each role inherits everything from the one below it
var groupingPolicies = [][]string{
	{string(RoleManager), string(RoleViewer)},
	{string(RoleAdmin), string(RoleManager)},
}

var policies = [][]string{
	{string(RoleViewer), ResourceEmployee, ActionRead},
	{string(RoleViewer), ResourceWriteUp, ActionRead},
	{string(RoleViewer), ResourceStanding, ActionRead},

	{string(RoleManager), ResourceWriteUp, ActionCreate},
	{string(RoleManager), ResourceCategory, ActionRead},

	{string(RoleAdmin), "*", "*"},
}
