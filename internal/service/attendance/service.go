package attendance

import (
	"context"
	"time"

	"github.com/talentbase/hrms-backend-go/internal/domain/attendance"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
)

const dateLayout = "2006-01-02"

type AttendanceService interface {
	// Mark creates a Present record for the caller for the server's current
	// date. The day is never client-supplied and Absent is never written here.
	Mark(ctx context.Context, requesterUserID string) (attendance.AttendanceResponse, error)

	// List returns all records for Admin/Manager requesters, ordered by date
	// descending, and only the requester's own records for everyone else.
	List(ctx context.Context, requesterRole user.Role, requesterUserID string) (attendance.ListAttendanceResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// Mark implements AttendanceService.
func (s *attendanceServiceImpl) Mark(ctx context.Context, requesterUserID string) (attendance.AttendanceResponse, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Truncate to the local calendar day.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	record, err := s.attendanceRepo.CreateIfAbsent(ctx, attendance.Attendance{
		EmployeeID: profile.ID,
		Date:       today,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.EmployeeName = profile.Username
	return toResponse(record), nil
}

// List implements AttendanceService.
func (s *attendanceServiceImpl) List(ctx context.Context, requesterRole user.Role, requesterUserID string) (attendance.ListAttendanceResponse, error) {
	var (
		records []attendance.Attendance
		err     error
	)

	if requesterRole == user.RoleAdmin || requesterRole == user.RoleManager {
		records, err = s.attendanceRepo.ListAll(ctx)
	} else {
		var profile employee.EmployeeProfile
		profile, err = s.employeeRepo.GetByUserID(ctx, requesterUserID)
		if err != nil {
			return attendance.ListAttendanceResponse{}, err
		}
		records, err = s.attendanceRepo.ListByEmployee(ctx, profile.ID)
	}
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return attendance.ListAttendanceResponse{Records: responses}, nil
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(dateLayout),
		Status:     string(rec.Status),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}
