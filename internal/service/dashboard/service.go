package dashboard

import (
	"context"
	"errors"
	"time"

	attendanceDomain "github.com/talentbase/hrms-backend-go/internal/domain/attendance"
	"github.com/talentbase/hrms-backend-go/internal/domain/dashboard"
	employeeDomain "github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
	employeeService "github.com/talentbase/hrms-backend-go/internal/service/employee"
	leaveService "github.com/talentbase/hrms-backend-go/internal/service/leave"
)

// pendingLeavePreview caps how many pending requests the overview shows.
const pendingLeavePreview = 5

type DashboardService interface {
	// Overview assembles the role-scoped landing view for an identity.
	Overview(ctx context.Context, requesterRole user.Role, requesterUserID string) (dashboard.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	leaveService    leaveService.LeaveService
	employeeService employeeService.EmployeeService
	employeeRepo    employeeDomain.EmployeeRepository
	attendanceRepo  attendanceDomain.AttendanceRepository
	now             func() time.Time
}

func NewDashboardService(
	leaveSvc leaveService.LeaveService,
	employeeSvc employeeService.EmployeeService,
	employeeRepo employeeDomain.EmployeeRepository,
	attendanceRepo attendanceDomain.AttendanceRepository,
) DashboardService {
	return &dashboardServiceImpl{
		leaveService:    leaveSvc,
		employeeService: employeeSvc,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		now:             time.Now,
	}
}

// Overview implements DashboardService.
func (s *dashboardServiceImpl) Overview(ctx context.Context, requesterRole user.Role, requesterUserID string) (dashboard.DashboardResponse, error) {
	resp := dashboard.DashboardResponse{Role: string(requesterRole)}

	switch requesterRole {
	case user.RoleAdmin, user.RoleManager:
		pending, err := s.leaveService.ListPending(ctx, pendingLeavePreview)
		if err != nil {
			return dashboard.DashboardResponse{}, err
		}
		resp.PendingLeaves = pending.Requests

	case user.RoleRecruiter:
		resp.Recruiter = &dashboard.RecruiterSection{ScreeningAvailable: true}

	default: // Employee
		profile, err := s.employeeService.GetByUserID(ctx, requesterUserID)
		if err != nil {
			if errors.Is(err, employeeDomain.ErrEmployeeNotFound) {
				return resp, nil
			}
			return dashboard.DashboardResponse{}, err
		}
		resp.Profile = &profile

		if today := s.todayStatus(ctx, profile.ID); today != nil {
			resp.TodayStatus = today
		}
	}

	return resp, nil
}

func (s *dashboardServiceImpl) todayStatus(ctx context.Context, employeeID string) *attendanceDomain.AttendanceResponse {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil || rec == nil {
		return nil
	}

	return &attendanceDomain.AttendanceResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}
