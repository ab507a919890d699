package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"ok", "Password1", true},
		{"too short", "Pass1", false},
		{"no uppercase", "password1", false},
		{"no lowercase", "PASSWORD1", false},
		{"no digit", "Passwordx", false},
		{"long with all classes", "CorrectHorse9battery", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validPassword(tt.password))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("alice@example.com"))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("Alice Smith <alice@example.com>"))
}

func TestValidateRegister_CollectsAllFailures(t *testing.T) {
	details := validateRegister(&registerRequest{
		Email:     "bad",
		Password:  "bad",
		FirstName: "A",
		LastName:  "",
		Role:      "root",
	})
	assert.Len(t, details, 5)

	details = validateRegister(&registerRequest{
		Email:     "alice@example.com",
		Password:  "Password1",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      "doctor",
	})
	assert.Empty(t, details)
}
