package dashboard

import (
	"github.com/talentbase/hrms-backend-go/internal/domain/attendance"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/leave"
)

// DashboardResponse is role-scoped: exactly one of the sections is populated
// depending on the requesting identity's role.
type DashboardResponse struct {
	Role          string                         `json:"role"`
	PendingLeaves []leave.LeaveRequestResponse   `json:"pending_leaves,omitempty"`
	Profile       *employee.EmployeeResponse     `json:"profile,omitempty"`
	TodayStatus   *attendance.AttendanceResponse `json:"today_status,omitempty"`
	Recruiter     *RecruiterSection              `json:"recruiter,omitempty"`
}

type RecruiterSection struct {
	ScreeningAvailable bool `json:"screening_available"`
}
