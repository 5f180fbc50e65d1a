package user

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
)

const (
	maxNameLength    = 100
	maxSurnameLength = 100
)

// User represents the user aggregate root. The password hash is opaque to the
// domain; hashing and verification live in the auth service.
type User struct {
	id           uint
	name         string
	surname      string
	email        *valueobjects.Email
	role         actor.Role
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate with the client role. Staff roles are
// only assigned afterwards by an administrator.
func NewUser(name, surname string, email *valueobjects.Email, passwordHash string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSurname(surname); err != nil {
		return nil, err
	}
	if email == nil {
		return nil, errors.NewValidationError("email", "email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		name:         name,
		surname:      surname,
		email:        email,
		role:         actor.RoleClient,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	name, surname string,
	email *valueobjects.Email,
	role actor.Role,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		surname:      surname,
		email:        email,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Surname() string {
	return u.surname
}

// FullName returns the display name used in listings and notifications.
func (u *User) FullName() string {
	if u.surname == "" {
		return u.name
	}
	return u.name + " " + u.surname
}

func (u *User) Email() *valueobjects.Email {
	return u.email
}

func (u *User) Role() actor.Role {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Actor returns the actor identity this user acts as.
func (u *User) Actor() actor.Actor {
	return actor.Actor{ID: u.id, Role: u.role}
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes the user's name and surname.
func (u *User) UpdateProfile(name, surname string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateSurname(surname); err != nil {
		return err
	}

	u.name = name
	u.surname = surname
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeEmail replaces the user's email address.
func (u *User) ChangeEmail(email *valueobjects.Email) error {
	if email == nil {
		return errors.NewValidationError("email", "email is required")
	}

	u.email = email
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeRole assigns a new role. Role assignment authorization is enforced by
// the use case layer; the aggregate only guards validity.
func (u *User) ChangeRole(role actor.Role) error {
	if !role.IsValid() {
		return errors.NewValidationError("role", fmt.Sprintf("invalid role: %s", role))
	}

	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errors.NewValidationError("name", "name is required")
	}
	if len(name) > maxNameLength {
		return errors.NewValidationError("name",
			fmt.Sprintf("name exceeds maximum length of %d characters", maxNameLength))
	}
	return nil
}

func validateSurname(surname string) error {
	if len(surname) > maxSurnameLength {
		return errors.NewValidationError("surname",
			fmt.Sprintf("surname exceeds maximum length of %d characters", maxSurnameLength))
	}
	return nil
}
