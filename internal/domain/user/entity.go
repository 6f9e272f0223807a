package user

import "time"

type Role string

const (
	RoleAdmin     Role = "Admin"     // Full HR administration
	RoleManager   Role = "Manager"   // Can approve leave and view team data
	RoleEmployee  Role = "Employee"  // Regular employee
	RoleRecruiter Role = "Recruiter" // Hiring workflows only
)

// ValidRoles is the closed set of roles accepted at registration.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleEmployee, RoleRecruiter}

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

type User struct {
	ID              string
	Username        string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// HasProfile reports whether this role owns an employee profile.
// Only Employee and Manager identities carry HR data.
func (u *User) HasProfile() bool {
	return u.Role == RoleEmployee || u.Role == RoleManager
}

// CanDecideLeave checks if user can approve or reject leave requests.
func (u *User) CanDecideLeave() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
