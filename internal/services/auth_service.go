package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/auth"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
	model "task-tracker.com/task-tracker/pkg/models"
)

type AuthService struct {
	users  *repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.JWTManager
}

func NewAuthService(users *repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTManager) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.respond(user)
}

// Identify resolves a bearer token to its user. Runs on every authenticated
// request.
func (s *AuthService) Identify(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) respond(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID, user.Name)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Token: token,
	}, nil
}
