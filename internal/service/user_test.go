package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wilbyang/reserver/internal/auth"
	"github.com/wilbyang/reserver/internal/domain"
	"github.com/wilbyang/reserver/internal/service/ports/mocks"
	"golang.org/x/crypto/bcrypt"
)

func newTestTokens(t *testing.T) *auth.Manager {
	t.Helper()
	return auth.NewManager("test-secret", time.Hour)
}

func TestUserService_Register_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestTokens(t))

	var stored *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, u *domain.User) {
		stored = u
	}).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.UserRoleRegular, user.Role, "role defaults to regular")
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestUserService_Register_MissingEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestTokens(t))

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_MissingPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestTokens(t))

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestTokens(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "pw12345678",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	tokens := newTestTokens(t)
	svc := NewUserService(repo, tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	token, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.True(t, claims.IsAdmin())
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestTokens(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestTokens(t))

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "pw")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "missing user is indistinguishable from a bad password")
}
