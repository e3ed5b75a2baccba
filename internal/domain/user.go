package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Role controls which member routes a user may call.
type Role string

const (
	// RoleUser is assigned to every member at registration.
	RoleUser Role = "user"

	// RoleAdmin may list and remove members.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered member of the association.
// Only the bcrypt hash of the password is ever held; it is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	AddressID      *int64    `json:"-"`
	Address        *Address  `json:"address,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUser creates a new User with the given email and password hash.
// The address may be nil. The ID is assigned by the store on persist.
func NewUser(email, hashedPassword string, address *Address) (*User, error) {
	user := &User{
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           RoleUser,
		CreatedAt:      time.Now().UTC(),
	}
	user.SetAddress(address)

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// SetAddress links the address to the user. A nil address clears the link.
func (u *User) SetAddress(address *Address) {
	u.Address = address
	if address == nil || address.ID == 0 {
		u.AddressID = nil
		return
	}
	id := address.ID
	u.AddressID = &id
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	if !u.Role.Valid() {
		return NewValidationError("role", "must be user or admin", ErrInvalidRole)
	}

	if u.Address != nil {
		if err := u.Address.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// validateEmailFormat performs basic validation of email format: a non-empty
// local part, an @, and a domain containing a dot that is neither leading nor
// trailing. Request payloads are additionally checked by the validator's
// email tag at the API boundary.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
