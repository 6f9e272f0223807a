package payroll

import (
	"context"
	"time"

	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/payroll"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
)

type PayrollService interface {
	// Create records a compensation snapshot for an employee and month.
	Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)

	// List returns all snapshots for Admin/Manager requesters and only the
	// requester's own for everyone else. Totals are derived on read.
	List(ctx context.Context, requesterRole user.Role, requesterUserID string) ([]payroll.PayrollResponse, error)
}

type payrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) PayrollService {
	return &payrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements PayrollService.
func (s *payrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Fails with ErrEmployeeNotFound before inserting a dangling reference.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.Create(ctx, payroll.Payroll{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		BaseSalary: req.BaseSalary,
		Bonus:      req.Bonus,
		Deductions: req.Deductions,
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(record), nil
}

// List implements PayrollService.
func (s *payrollServiceImpl) List(ctx context.Context, requesterRole user.Role, requesterUserID string) ([]payroll.PayrollResponse, error) {
	var (
		records []payroll.Payroll
		err     error
	)

	if requesterRole == user.RoleAdmin || requesterRole == user.RoleManager {
		records, err = s.payrollRepo.ListAll(ctx)
	} else {
		var profile employee.EmployeeProfile
		profile, err = s.employeeRepo.GetByUserID(ctx, requesterUserID)
		if err != nil {
			return nil, err
		}
		records, err = s.payrollRepo.ListByEmployee(ctx, profile.ID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

func toResponse(rec payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Month:       rec.Month,
		BaseSalary:  rec.BaseSalary,
		Bonus:       rec.Bonus,
		Deductions:  rec.Deductions,
		TotalSalary: rec.TotalSalary(),
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}
