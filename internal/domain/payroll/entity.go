package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is a per-employee, per-month compensation snapshot. The total is
// derived on read and never stored. Amounts use fixed-point decimals rather
// than binary floats so that arithmetic on money is exact.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      string
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Deductions decimal.Decimal
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}

// TotalSalary returns base_salary + bonus - deductions. The result may be
// negative when deductions exceed base plus bonus; no clamping is applied.
func (p *Payroll) TotalSalary() decimal.Decimal {
	return p.BaseSalary.Add(p.Bonus).Sub(p.Deductions)
}
