package user

import "context"

// UserRepository defines data access methods for identities.
type UserRepository interface {
	// Create persists a new user and returns it with generated fields set
	Create(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username, used on login
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByOAuth retrieves a user by oauth provider and provider ID
	GetByOAuth(ctx context.Context, provider string, providerID string) (User, error)
}
