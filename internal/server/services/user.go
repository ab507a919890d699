// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, profile lookup, and
// issuing/rotating the JWT pairs that drive the session lifecycle.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medportal/authsvc/internal/common"
	"github.com/medportal/authsvc/internal/dbx"
	"github.com/medportal/authsvc/internal/server/auth"
	"github.com/medportal/authsvc/internal/server/config"
	"github.com/medportal/authsvc/internal/server/models"
	"github.com/medportal/authsvc/internal/server/passwords"
	"github.com/medportal/authsvc/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
// - Register: create accounts and open an initial session
// - Login: verify credentials and mint tokens
// - Refresh: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token
// - Profile: fetch the account behind an authenticated request
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *passwords.Hasher
	accessSecret                 []byte
	refreshSecret                []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	databaseTimeout              time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		hasher:                       passwords.NewHasher(cfg.BcryptCost),
		accessSecret:                 []byte(cfg.AccessSecretKey),
		refreshSecret:                []byte(cfg.RefreshSecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		databaseTimeout:              cfg.DatabaseTimeout,
	}
}

// Register creates a new account and opens its first session. A duplicate
// email yields common.ErrorAlreadyExists, whether caught by the pre-check or
// by the store's unique constraint under a concurrent insert.
func (s *UserService) Register(ctx context.Context, email, password, firstName, lastName string, role models.Role) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	findCtx, cancel := s.storeContext(ctx)
	_, err := repo.GetByEmail(findCtx, email)
	cancel()
	if err == nil {
		return nil, nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, nil, fmt.Errorf("error checking email: %v", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
	}

	createCtx, cancel := s.storeContext(ctx)
	created, err := repo.Create(createCtx, user)
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		return nil, nil, fmt.Errorf("error creating user: %v", err)
	}

	pair, err := s.generateTokenPair(ctx, created, s.db)
	if err != nil {
		return nil, nil, err
	}
	return created, pair, nil
}

// Login verifies the email/password pair and, on success, returns the account
// and a fresh TokenPair. Unknown emails and wrong passwords are both reported
// as common.ErrInvalidCredentials; the password check runs before the
// is_active check so a disabled account does not leak whether the password
// was right.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	findCtx, cancel := s.storeContext(ctx)
	user, err := repo.GetByEmail(findCtx, email)
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil, common.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, common.ErrAccountDisabled
	}

	pair, err := s.generateTokenPair(ctx, user, s.db)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token, rotates it in place, and returns a fresh
// TokenPair. The token must pass signature and expiry checks AND still be
// the stored value for its row; a token that lost a concurrent rotation race
// is rejected the same way as a forged one.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if _, err := auth.Verify(refreshToken, s.refreshSecret); err != nil {
		return nil, common.ErrInvalidRefreshToken
	}

	repo := s.repomanager.RefreshTokens(s.db)

	findCtx, cancel := s.storeContext(ctx)
	stored, err := repo.Find(findCtx, refreshToken)
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("error searching refresh token: %v", err)
	}

	userCtx, cancel := s.storeContext(ctx)
	user, err := s.repomanager.Users(s.db).GetByID(userCtx, stored.UserID)
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}

	if !user.IsActive {
		return nil, common.ErrAccountDisabled
	}

	access, err := auth.Mint(user.ID, user.Email, user.Role, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.Mint(user.ID, user.Email, user.Role, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	txCtx, cancel := s.storeContext(ctx)
	err = dbx.WithTx(txCtx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		return repoTx.Rotate(ctx, refreshToken, refresh, time.Now().Add(s.refreshTokenValidityDuration))
	})
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("error rotating refresh token: %v", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes the given refresh token. Revoking an unknown or already
// revoked token is not an error, so repeated logouts are safe.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	repo := s.repomanager.RefreshTokens(s.db)

	delCtx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := repo.Delete(delCtx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %v", err)
	}
	return nil
}

// Profile returns the account with the given id or common.ErrUserNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	findCtx, cancel := s.storeContext(ctx)
	defer cancel()
	user, err := repo.GetByID(findCtx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}
	return user, nil
}

// --- helpers below ---

// storeContext bounds a single store operation so a database outage fails
// fast instead of hanging the request.
func (s *UserService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.databaseTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.databaseTimeout)
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.Mint(user.ID, user.Email, user.Role, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.Mint(user.ID, user.Email, user.Role, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshRepo := s.repomanager.RefreshTokens(tx)
	createCtx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := refreshRepo.Create(createCtx, user.ID, refresh, time.Now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
