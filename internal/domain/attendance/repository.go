package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// CreateIfAbsent inserts a record for (employee, date) as a single atomic
	// conditional insert. Returns ErrAlreadyMarked when a record for that day
	// already exists; the uniqueness is enforced by the storage layer, not by
	// a prior existence check.
	CreateIfAbsent(ctx context.Context, record Attendance) (Attendance, error)

	// ListAll retrieves all records across employees, date descending
	ListAll(ctx context.Context) ([]Attendance, error)

	// ListByEmployee retrieves one employee's records, date descending
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// GetByEmployeeAndDate retrieves the record for a specific day, nil when absent
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
}
