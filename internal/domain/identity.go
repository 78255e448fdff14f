package domain

// Role enumerates the three actor variants that can hold a session.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleCustomer   Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleCustomer:
		return true
	}
	return false
}

// PanelName is the header label shown for the role.
func (r Role) PanelName() string {
	switch r {
	case RoleAdmin:
		return "Admin Panel"
	case RoleTechnician:
		return "Technician Panel"
	case RoleCustomer:
		return "Customer Portal"
	default:
		return ""
	}
}

// Identity is an authenticated actor.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// Technician is an assignable field engineer.
type Technician struct {
	ID   string
	Name string
}
