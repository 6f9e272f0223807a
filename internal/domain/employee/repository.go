package employee

import "context"

// EmployeeRepository defines data access methods for employee profiles.
type EmployeeRepository interface {
	// Create persists a new profile
	Create(ctx context.Context, profile EmployeeProfile) (EmployeeProfile, error)

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id string) (EmployeeProfile, error)

	// GetByUserID retrieves the profile owned by an identity
	GetByUserID(ctx context.Context, userID string) (EmployeeProfile, error)

	// List retrieves all profiles joined with their identity username
	List(ctx context.Context) ([]EmployeeProfile, error)

	// Update applies a partial update to a profile
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeProfile, error)

	// Delete removes a profile; attendance, payroll and leave rows cascade
	Delete(ctx context.Context, id string) error
}
