package httpapi

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/medportal/authsvc/internal/server/models"
)

// registerRequest is the POST /auth/register body.
type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// loginRequest is the POST /auth/login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// refreshRequest carries the refresh token for POST /auth/refresh and
// POST /auth/logout.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// validEmail reports whether s parses as a bare address (no display name).
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validPassword enforces the password policy: at least 8 characters with
// one uppercase letter, one lowercase letter, and one digit.
func validPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// validateRegister checks every field and reports all failures at once, so
// a client can surface them against the form fields.
func validateRegister(req *registerRequest) []FieldError {
	var details []FieldError

	if !validEmail(req.Email) {
		details = append(details, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}
	if !validPassword(req.Password) {
		details = append(details, FieldError{Field: "password", Message: "Password must be at least 8 characters with uppercase, lowercase and a number"})
	}
	if len(strings.TrimSpace(req.FirstName)) < 2 {
		details = append(details, FieldError{Field: "firstName", Message: "First name must be at least 2 characters"})
	}
	if len(strings.TrimSpace(req.LastName)) < 2 {
		details = append(details, FieldError{Field: "lastName", Message: "Last name must be at least 2 characters"})
	}
	if !models.Role(req.Role).Valid() {
		details = append(details, FieldError{Field: "role", Message: "Role must be one of: admin, doctor, patient"})
	}

	return details
}

func validateLogin(req *loginRequest) []FieldError {
	var details []FieldError

	if !validEmail(req.Email) {
		details = append(details, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}
	if req.Password == "" {
		details = append(details, FieldError{Field: "password", Message: "Password is required"})
	}

	return details
}
