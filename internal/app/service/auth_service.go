package service

import (
	"context"
	"errors"
	"fmt"
	"waste_tracker/internal/common"
	"waste_tracker/internal/common/security"
	"waste_tracker/internal/domain/model"
	"waste_tracker/internal/domain/repository"

	"go.uber.org/zap"
)

// AuthService resolves login attempts against two credential sources: the
// persistent user store first, then the fixed fallback table when the store
// errors out or has no matching row.
type AuthService struct {
	users    repository.UserRepository
	fallback repository.UserRepository
	logger   *zap.Logger
}

func NewAuthService(users, fallback repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, fallback: fallback, logger: logger}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	source := "store"
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		// A store failure is swallowed here: both it and "no row" hand the
		// attempt to the fallback table.
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn("user store unreachable during login, consulting fallback table",
				zap.String("username", req.Username), zap.Error(err))
		}
		source = "fallback"
		user, err = s.fallback.FindByUsername(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	s.logger.Info("login resolved",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
		zap.String("source", source))

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = "" // Clear password before returning
	return &AuthResponse{Token: token, User: user}, nil
}
