package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medportal/authsvc/internal/common"
)

// FieldError describes a single request-validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorBody is the error envelope shared by every failing response.
type errorBody struct {
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Details   []FieldError `json:"details,omitempty"`
	Timestamp string       `json:"timestamp"`
}

func respondError(c *gin.Context, status int, label, message string, details ...FieldError) {
	c.AbortWithStatusJSON(status, errorBody{
		Error:     label,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// respondServiceError maps service-layer sentinels to HTTP statuses. The
// production flag controls whether unexpected errors leak their text.
func respondServiceError(c *gin.Context, err error, production bool) {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		respondError(c, http.StatusConflict, "Conflict", "User with this email already exists")
	case errors.Is(err, common.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
	case errors.Is(err, common.ErrAccountDisabled):
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Account is deactivated")
	case errors.Is(err, common.ErrInvalidRefreshToken):
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Invalid or expired refresh token")
	case errors.Is(err, common.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "Not Found", "User not found")
	case errors.Is(err, common.ErrorNotFound):
		respondError(c, http.StatusNotFound, "Not Found", "Resource not found")
	default:
		msg := "Internal server error"
		if !production {
			msg = err.Error()
		}
		respondError(c, http.StatusInternalServerError, "Internal Server Error", msg)
	}
}
