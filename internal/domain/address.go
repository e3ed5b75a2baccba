package domain

import "strings"

// Address is a postal address owned by a single member.
// Address2 and Address3 are optional; every other line is required.
type Address struct {
	ID         int64  `json:"id"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	Address3   string `json:"address3,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// NewAddress creates an Address from its lines and validates it.
// The returned address has no ID until it is persisted.
func NewAddress(address1, address2, address3, city, state, postalCode, country string) (*Address, error) {
	a := &Address{
		Address1:   strings.TrimSpace(address1),
		Address2:   strings.TrimSpace(address2),
		Address3:   strings.TrimSpace(address3),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		PostalCode: strings.TrimSpace(postalCode),
		Country:    strings.TrimSpace(country),
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks that every required line is present.
func (a *Address) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"address1", a.Address1},
		{"city", a.City},
		{"state", a.State},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	}

	for _, r := range required {
		if r.value == "" {
			return NewValidationError(r.field, "is required", ErrValidation)
		}
	}

	return nil
}
