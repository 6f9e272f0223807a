package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// IsTerminal reports whether no further transition is defined from s.
// Pending is the sole non-terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsDecision reports whether s is a value decide may write.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	CreatedAt  time.Time
	DecidedBy  *string
	DecidedAt  *time.Time

	// DTO
	EmployeeName *string
}
