package leave

import "context"

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create persists a new request in Pending state
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee retrieves one employee's requests, newest first, all statuses
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListPending retrieves all Pending requests across employees, newest first
	ListPending(ctx context.Context, limit int) ([]LeaveRequest, error)

	// UpdateStatus writes the decision onto a request
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) error
}
