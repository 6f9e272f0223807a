package employee

import (
	"github.com/shopspring/decimal"
	"github.com/talentbase/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID           string          `json:"user_id"`
	Department       *string         `json:"department,omitempty"`
	Salary           decimal.Decimal `json:"salary"`
	PerformanceScore float64         `json:"performance_score"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID               string           `json:"-"`
	Department       *string          `json:"department,omitempty"`
	Salary           *decimal.Decimal `json:"salary,omitempty"`
	PerformanceScore *float64         `json:"performance_score,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Username         string          `json:"username"`
	Department       *string         `json:"department,omitempty"`
	Salary           decimal.Decimal `json:"salary"`
	PerformanceScore float64         `json:"performance_score"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}
