package auth

import (
	"net/mail"
	"strings"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxEmailLength    = 254
)

// LoginInput holds parameters for the email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdminInput holds the fields of a curator account created by an operator.
type AdminInput struct {
	Email    string
	Name     string
	Password string
}

// Validate validates the admin input.
func (i AdminInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = appendPasswordErrors(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func appendPasswordErrors(errs []domain.FieldError, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(password) < minPasswordLength:
		return append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(password) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}
