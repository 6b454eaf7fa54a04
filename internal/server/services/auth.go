// Package services contains the application services orchestrating
// authentication and task CRUD over the repository contracts.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/dmitrijs2005/taskhub/internal/server/config"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
)

type AuthService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewAuthService(repo users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Signup registers a new account. An already registered email fails with
// common.ErrEmailInUse before anything is persisted. The returned user
// carries the password hash; callers strip it before external exposure.
func (s *AuthService) Signup(ctx context.Context, email, firstName, lastName, password string) (*models.User, error) {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailInUse
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, common.ErrInternal
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token for the
// account id. An unknown email and a wrong password fail with the same
// common.ErrInvalidCredentials so the response does not reveal which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user, nil
}

// VerifyToken recovers the caller id from a bearer token.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// GetUser returns the account with the given id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
