package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medportal/authsvc/internal/server/models"
)

// authData is the payload returned by register and login.
type authData struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	// names are stored exactly as validated, without surrounding whitespace
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if details := validateRegister(&req); len(details) > 0 {
		respondError(c, http.StatusBadRequest, "Validation Error", "Request validation failed", details...)
		return
	}

	user, pair, err := s.users.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName, models.Role(req.Role))
	if err != nil {
		s.logger.Warn(c.Request.Context(), "registration failed", "email", req.Email, "error", err)
		respondServiceError(c, err, s.production)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "userID", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data": authData{
			User:         user,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if details := validateLogin(&req); len(details) > 0 {
		respondError(c, http.StatusBadRequest, "Validation Error", "Request validation failed", details...)
		return
	}

	user, pair, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Warn(c.Request.Context(), "login failed", "email", req.Email, "error", err)
		respondServiceError(c, err, s.production)
		return
	}

	s.logger.Info(c.Request.Context(), "user logged in", "userID", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": authData{
			User:         user,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	})
}

func (s *Server) handleRefresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Refresh token is required")
		return
	}

	pair, err := s.users.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err, s.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data": gin.H{
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
		},
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	var req refreshRequest
	// The body is optional: logging out without a refresh token simply has
	// nothing to revoke.
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := s.users.Logout(c.Request.Context(), req.RefreshToken); err != nil {
			respondServiceError(c, err, s.production)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *Server) handleVerify(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"role":  claims.Role,
		},
	})
}

func (s *Server) handleProfile(c *gin.Context) {
	claims := claimsFrom(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	user, err := s.users.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err, s.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "auth-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Not Found",
		"Route "+c.Request.Method+" "+c.Request.URL.Path+" not found")
}
