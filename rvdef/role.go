package rvdef

// Role identifies the purpose of a credential. The set is closed: every
// role the product knows about is enumerated here, so path resolution never
// has to handle an unknown role at runtime.
type Role int

const (
	// RoleTeacher is the interactive classroom-control role.
	RoleTeacher Role = iota

	// RoleAdmin is the administrative role with full configuration access.
	RoleAdmin

	// RoleSupport is the technical support role.
	RoleSupport

	// RoleOther covers auxiliary integrations that hold their own key.
	RoleOther
)

// Roles returns all defined roles in a stable order.
func Roles() []Role {
	return []Role{RoleTeacher, RoleAdmin, RoleSupport, RoleOther}
}

// String returns the role's display name.
func (r Role) String() string {
	switch r {
	case RoleTeacher:
		return "Teacher"
	case RoleAdmin:
		return "Admin"
	case RoleSupport:
		return "Support"
	case RoleOther:
		return "Other"
	}
	return "Unknown"
}

// DirName returns the role's directory component used below the key base
// directory. Distinct per role so two roles can never share key files.
func (r Role) DirName() string {
	switch r {
	case RoleTeacher:
		return "teacher"
	case RoleAdmin:
		return "admin"
	case RoleSupport:
		return "support"
	case RoleOther:
		return "other"
	}
	return "unknown"
}

// ParseRole maps a command-line role name to a Role.
func ParseRole(name string) (Role, bool) {
	for _, r := range Roles() {
		if name == r.DirName() {
			return r, true
		}
	}
	return 0, false
}
