// Package httpapi exposes the authentication service over HTTP. It wires
// the gin router, the request guards, and the JSON contracts of the public
// endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medportal/authsvc/internal/logging"
	"github.com/medportal/authsvc/internal/server/config"
	"github.com/medportal/authsvc/internal/server/services"
)

// Server hosts the HTTP endpoint of the auth service.
type Server struct {
	address      string
	users        *services.UserService
	logger       logging.Logger
	accessSecret []byte
	production   bool
}

// NewServer builds a Server around the given user service and config.
func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService) *Server {
	return &Server{
		address:      cfg.EndpointAddrHTTP,
		users:        us,
		logger:       l.With("module", "http_server"),
		accessSecret: []byte(cfg.AccessSecretKey),
		production:   cfg.IsProduction(),
	}
}

// Router assembles the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	if s.production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	r.GET("/health", s.handleHealth)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/refresh", s.handleRefresh)

		guarded := authGroup.Group("")
		guarded.Use(Authenticate(s.accessSecret))
		{
			guarded.POST("/logout", s.handleLogout)
			guarded.GET("/verify", s.handleVerify)
			guarded.GET("/profile", s.handleProfile)
		}
	}

	r.NoRoute(s.handleNotFound)

	return r
}

// requestLogger emits one structured log line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
