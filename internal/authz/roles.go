package authz

// Role is one of the four fixed role names. The set is closed: identities
// carrying any other name are malformed and must be rejected before a
// permission check runs.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleViewer     Role = "viewer"
)

var ranks = map[Role]int{
	RoleSuperAdmin: 4,
	RoleAdmin:      3,
	RoleEditor:     2,
	RoleViewer:     1,
}

// ParseRole validates a role name coming from a token or request body.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if _, ok := ranks[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Rank returns the role's position in the total order, higher meaning more
// privileged. Unknown roles rank 0, below every real role.
func Rank(r Role) int { return ranks[r] }

type Ordering int

const (
	Lower  Ordering = -1
	Equal  Ordering = 0
	Higher Ordering = 1
)

// Compare orders role a against role b.
func Compare(a, b Role) Ordering {
	switch ra, rb := ranks[a], ranks[b]; {
	case ra > rb:
		return Higher
	case ra < rb:
		return Lower
	default:
		return Equal
	}
}

// RoleNamesAtOrBelow lists the role names whose rank does not exceed r's,
// ordered from most to least privileged.
func RoleNamesAtOrBelow(r Role) []string {
	limit := ranks[r]
	var names []string
	for _, role := range []Role{RoleSuperAdmin, RoleAdmin, RoleEditor, RoleViewer} {
		if ranks[role] <= limit {
			names = append(names, string(role))
		}
	}
	return names
}
