package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeProfile holds the HR data owned by a single identity.
// Exactly one profile exists per Employee or Manager user.
type EmployeeProfile struct {
	ID               string
	UserID           string
	Department       *string
	Salary           decimal.Decimal
	PerformanceScore float64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	Username *string
	Role     *string
}
