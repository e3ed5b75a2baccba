package api

import (
	"time"

	"github.com/hoorayhoa/hoa-api/internal/domain"
	"github.com/hoorayhoa/hoa-api/internal/service"
	"github.com/hoorayhoa/hoa-api/internal/service/auth"
)

// RegisterRequest defines the payload for the member registration endpoint.
// The address lines are flattened into the top-level object. Passwords are
// capped at 72 bytes, the most bcrypt reads.
type RegisterRequest struct {
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,max=72"`
	Address1   string `json:"address1"   validate:"required,max=255"`
	Address2   string `json:"address2"   validate:"omitempty,max=255"`
	Address3   string `json:"address3"   validate:"omitempty,max=255"`
	City       string `json:"city"       validate:"required,max=100"`
	State      string `json:"state"      validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country"    validate:"required,max=100"`
}

// ToInput converts the request into the service layer's input.
func (r RegisterRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Address: service.AddressInput{
			Address1:   r.Address1,
			Address2:   r.Address2,
			Address3:   r.Address3,
			City:       r.City,
			State:      r.State,
			PostalCode: r.PostalCode,
			Country:    r.Country,
		},
	}
}

// LoginRequest defines the payload for the login endpoint. Only presence is
// checked; any other bad credential is left to the service to reject as
// invalid credentials.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddressResponse is the public view of a member's address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	Address3   string `json:"address3,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// UserResponse is the public view of a member. It never carries the
// password hash.
type UserResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
	Address   *AddressResponse `json:"address,omitempty"`
}

// RegisterResponse is returned with 201 after a successful registration.
type RegisterResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse echoes the decoded claims of the caller's token.
// Times are Unix seconds, as in the token itself.
type ProfileResponse struct {
	Sub   int64  `json:"sub"`
	Email string `json:"email"`
	Iat   int64  `json:"iat"`
	Exp   int64  `json:"exp"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

func newAddressResponse(a *domain.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:         a.ID,
		Address1:   a.Address1,
		Address2:   a.Address2,
		Address3:   a.Address3,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		Address:   newAddressResponse(u.Address),
	}
}

func newUserResponses(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

func newProfileResponse(c *auth.Claims) ProfileResponse {
	return ProfileResponse{
		Sub:   c.UserID,
		Email: c.Email,
		Iat:   c.IssuedAt.Unix(),
		Exp:   c.ExpiresAt.Unix(),
	}
}
