package payroll

import "context"

// PayrollRepository defines data access methods for payroll snapshots.
type PayrollRepository interface {
	// Create persists a new snapshot
	Create(ctx context.Context, record Payroll) (Payroll, error)

	// ListByEmployee retrieves one employee's snapshots, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)

	// ListAll retrieves all snapshots joined with employee names, newest first
	ListAll(ctx context.Context) ([]Payroll, error)
}
