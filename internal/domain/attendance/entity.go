package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Attendance is one per-day status record. Records are append-only:
// never updated or deleted once written.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}
