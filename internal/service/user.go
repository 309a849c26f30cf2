package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wilbyang/reserver/internal/auth"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   ports.UserRepo
	tokens *auth.Manager
}

func NewUserService(repo ports.UserRepo, tokens *auth.Manager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.UserRoleRegular
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
