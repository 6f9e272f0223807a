package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"admin can delete employees", RoleAdmin, PermissionEmployeeDelete, true},
		{"admin can decide leave", RoleAdmin, PermissionLeaveDecide, true},
		{"admin cannot mark attendance", RoleAdmin, PermissionAttendanceMark, false},
		{"admin cannot run screening", RoleAdmin, PermissionScreeningRun, false},
		{"manager cannot delete employees", RoleManager, PermissionEmployeeDelete, false},
		{"manager can edit employees", RoleManager, PermissionEmployeeEdit, true},
		{"manager can decide leave", RoleManager, PermissionLeaveDecide, true},
		{"employee can mark attendance", RoleEmployee, PermissionAttendanceMark, true},
		{"employee can submit leave", RoleEmployee, PermissionLeaveSubmit, true},
		{"employee cannot decide leave", RoleEmployee, PermissionLeaveDecide, false},
		{"employee cannot view all employees", RoleEmployee, PermissionEmployeeViewAll, false},
		{"employee can ask assistant", RoleEmployee, PermissionAssistantAsk, true},
		{"recruiter can run screening", RoleRecruiter, PermissionScreeningRun, true},
		{"recruiter can ask assistant", RoleRecruiter, PermissionAssistantAsk, true},
		{"recruiter cannot view payroll", RoleRecruiter, PermissionPayrollView, false},
		{"recruiter cannot submit leave", RoleRecruiter, PermissionLeaveSubmit, false},
		{"unknown role has nothing", Role("Intern"), PermissionDashboardView, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HasPermission(c.role, c.permission))
		})
	}
}

func TestAllRolesCanViewDashboard(t *testing.T) {
	for _, role := range ValidRoles {
		assert.True(t, HasPermission(role, PermissionDashboardView), "role %s should see the dashboard", role)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range ValidRoles {
		assert.True(t, IsValidRole(role))
	}
	assert.False(t, IsValidRole(Role("admin")))
	assert.False(t, IsValidRole(Role("")))
	assert.False(t, IsValidRole(Role("Owner")))
}

func TestHasProfile(t *testing.T) {
	assert.True(t, (&User{Role: RoleEmployee}).HasProfile())
	assert.True(t, (&User{Role: RoleManager}).HasProfile())
	assert.False(t, (&User{Role: RoleAdmin}).HasProfile())
	assert.False(t, (&User{Role: RoleRecruiter}).HasProfile())
}
