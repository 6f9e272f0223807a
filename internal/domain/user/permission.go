package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeCreate  Permission = "employee.create"
	PermissionEmployeeEdit    Permission = "employee.edit"
	PermissionEmployeeDelete  Permission = "employee.delete"

	// Attendance Management
	PermissionAttendanceMark Permission = "attendance.mark"
	PermissionAttendanceView Permission = "attendance.view"

	// Leave Management
	PermissionLeaveSubmit      Permission = "leave.submit"
	PermissionLeaveViewOwn     Permission = "leave.view_own"
	PermissionLeaveViewPending Permission = "leave.view_pending"
	PermissionLeaveDecide      Permission = "leave.decide"

	// Payroll
	PermissionPayrollCreate Permission = "payroll.create"
	PermissionPayrollView   Permission = "payroll.view"

	// AI features
	PermissionScreeningRun Permission = "screening.run"
	PermissionAssistantAsk Permission = "assistant.ask"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions. Roles are a flat set:
// a role holds exactly what is listed here, nothing is inherited.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeCreate,
		PermissionEmployeeEdit,
		PermissionEmployeeDelete,
		PermissionAttendanceView,
		PermissionLeaveViewPending,
		PermissionLeaveDecide,
		PermissionPayrollCreate,
		PermissionPayrollView,
		PermissionDashboardView,
	},
	RoleManager: {
		PermissionEmployeeViewAll,
		PermissionEmployeeCreate,
		PermissionEmployeeEdit,
		PermissionAttendanceView,
		PermissionLeaveViewPending,
		PermissionLeaveDecide,
		PermissionPayrollCreate,
		PermissionPayrollView,
		PermissionDashboardView,
	},
	RoleEmployee: {
		PermissionAttendanceMark,
		PermissionAttendanceView,
		PermissionLeaveSubmit,
		PermissionLeaveViewOwn,
		PermissionPayrollView,
		PermissionAssistantAsk,
		PermissionDashboardView,
	},
	RoleRecruiter: {
		PermissionScreeningRun,
		PermissionAssistantAsk,
		PermissionDashboardView,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
