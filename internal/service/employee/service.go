package employee

import (
	"context"
	"time"

	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetByUserID(ctx context.Context, userID string) (employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	profile, err := s.employeeRepo.Create(ctx, employee.EmployeeProfile{
		UserID:           req.UserID,
		Department:       req.Department,
		Salary:           req.Salary,
		PerformanceScore: req.PerformanceScore,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(profile), nil
}

// List implements EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	profiles, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

// Get implements EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	profile, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(profile), nil
}

// GetByUserID implements EmployeeService.
func (s *employeeServiceImpl) GetByUserID(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(profile), nil
}

// Update implements EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	profile, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(profile), nil
}

// Delete implements EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toResponse(p employee.EmployeeProfile) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Department:       p.Department,
		Salary:           p.Salary,
		PerformanceScore: p.PerformanceScore,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Username != nil {
		resp.Username = *p.Username
	}
	return resp
}
