package user

import "context"

// Repository defines the persistence interface for users
type Repository interface {
	// Save persists a new user and assigns its ID
	Save(ctx context.Context, user *User) error

	// Update persists changes to an existing user
	Update(ctx context.Context, user *User) error

	// Delete removes a user by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by normalized email address
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a user with the email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List retrieves all users
	List(ctx context.Context) ([]*User, error)
}
