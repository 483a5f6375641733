package domain

import (
	"context"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Developer is a developer that can be invited to events. Email is the
// immutable primary key.
type Developer struct {
	Email       string
	Name        string
	CurrentCity string
	PhoneNumber string
}

// DeveloperInput is the request body for creating a developer.
// swagger:model DeveloperInput
type DeveloperInput struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CurrentCity string `json:"currentCity"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate returns the failed field rules; empty means valid.
func (in DeveloperInput) Validate() []FieldError {
	var errs []FieldError
	switch {
	case strings.TrimSpace(in.Email) == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required."})
	case !emailRegexp.MatchString(in.Email):
		errs = append(errs, FieldError{Field: "email", Message: "Email not valid."})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name of the developer is required."})
	}
	if strings.TrimSpace(in.CurrentCity) == "" {
		errs = append(errs, FieldError{Field: "currentCity", Message: "Current city name is required."})
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "Phone number is required."})
	}
	return errs
}

// Developer builds the record for a validated input.
func (in DeveloperInput) Developer() *Developer {
	return &Developer{
		Email:       in.Email,
		Name:        in.Name,
		CurrentCity: in.CurrentCity,
		PhoneNumber: in.PhoneNumber,
	}
}

// DeveloperView is the rendered form of a Developer.
// swagger:model DeveloperView
type DeveloperView struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	CurrentCity string `json:"currentCity"`
	PhoneNumber string `json:"phoneNumber"`
}

// NewDeveloperView renders d.
func NewDeveloperView(d *Developer) *DeveloperView {
	return &DeveloperView{
		Email:       d.Email,
		Name:        d.Name,
		CurrentCity: d.CurrentCity,
		PhoneNumber: d.PhoneNumber,
	}
}

// DeveloperService creates and looks up developers.
type DeveloperService interface {
	CreateDeveloper(ctx context.Context, in DeveloperInput) (*DeveloperView, error)
	GetDeveloperByEmail(ctx context.Context, email string) (*DeveloperView, error)
	GetDevelopers(ctx context.Context) ([]*DeveloperView, error)
}
