package rbac

// Role names. Keep these stable; they are stored on user records and inside
// session tokens.
const (
	RoleAdmin          = "ADMIN"
	RoleSalesManager   = "SALES_MANAGER"
	RoleSalesExecutive = "SALES_EXECUTIVE"
)

func IsAdmin(role string) bool { return role == RoleAdmin }

// IsExecutive reports whether the role only sees its own assigned leads.
func IsExecutive(role string) bool { return role == RoleSalesExecutive }

func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSalesManager, RoleSalesExecutive:
		return true
	default:
		return false
	}
}
