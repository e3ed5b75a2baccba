package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewUser(t *testing.T) {
	validEmail := "test@example.com"
	validHash := "$2a$12$abcdefghijklmnopqrstuv"

	user, err := NewUser(validEmail, validHash, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID != 0 {
		t.Errorf("Expected unassigned ID, got %d", user.ID)
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.HashedPassword != validHash {
		t.Errorf("Expected hashed password %s, got %s", validHash, user.HashedPassword)
	}

	if user.Role != RoleUser {
		t.Errorf("Expected role %q, got %q", RoleUser, user.Role)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.AddressID != nil || user.Address != nil {
		t.Error("Expected no address link")
	}

	_, err = NewUser("", validHash, nil)
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("invalidemail", validHash, nil)
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	_, err = NewUser(validEmail, "", nil)
	if err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}

func TestNewUserWithAddress(t *testing.T) {
	address := &Address{
		ID:         7,
		Address1:   "1 Elm",
		City:       "X",
		State:      "Y",
		PostalCode: "11111",
		Country:    "US",
	}

	user, err := NewUser("a@b.com", "hash", address)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.AddressID == nil || *user.AddressID != 7 {
		t.Fatalf("Expected address id 7, got %v", user.AddressID)
	}

	if user.Address != address {
		t.Error("Expected address to be linked")
	}

	_, err = NewUser("a@b.com", "hash", &Address{Address1: "1 Elm"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for incomplete address, got %v", err)
	}
}

func TestUserValidateRole(t *testing.T) {
	user := User{Email: "a@b.com", HashedPassword: "hash", Role: "owner"}

	err := user.Validate()
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Expected %v, got %v", ErrInvalidRole, err)
	}

	user.Role = RoleAdmin
	if err := user.Validate(); err != nil {
		t.Errorf("Expected admin role to be valid, got %v", err)
	}
	if !user.IsAdmin() {
		t.Error("Expected IsAdmin to be true")
	}
}

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	user, err := NewUser("a@b.com", "$2a$12$secret-hash-value", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if strings.Contains(string(data), "secret-hash-value") {
		t.Errorf("serialized user leaks password hash: %s", data)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"first.last@example.co.uk", true},
		{"@example.com", false},
		{"user@", false},
		{"user@.com", false},
		{"user@example.", false},
		{"user@example", false},
		{"userexample.com", false},
	}

	for _, tt := range tests {
		if got := validateEmailFormat(tt.email); got != tt.valid {
			t.Errorf("validateEmailFormat(%q) = %v, want %v", tt.email, got, tt.valid)
		}
	}
}
