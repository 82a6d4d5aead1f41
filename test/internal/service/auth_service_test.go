package service

import (
	"context"
	"testing"
	"time"

	cacheMocks "eventify/internal/cache/mocks"
	"eventify/internal/model"
	repoMocks "eventify/internal/repository/mocks"
	"eventify/internal/service"
	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = time.Hour

func setupAuthServiceMocks(t *testing.T) (*repoMocks.MockUserRepository, *cacheMocks.MockSessionStore, service.AuthService) {
	userRepo := repoMocks.NewMockUserRepository(t)
	sessions := cacheMocks.NewMockSessionStore(t)
	return userRepo, sessions, service.NewAuthService(userRepo, sessions, sessionTTL)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, sessions, authService := setupAuthServiceMocks(t)

		userRepo.EXPECT().FindByEmail(ctx, "alice@test.com").Return(nil, apperrors.ErrUserNotFound).Once()
		userRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(
			func(_ context.Context, u *model.User) (*model.User, error) {
				// 密碼必須雜湊後才進資料庫
				assert.NotEqual(t, "secret123", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
				return u, nil
			}).Once()
		sessions.EXPECT().Create(ctx, mock.Anything, mock.Anything, sessionTTL).Return(nil).Once()

		resp, err := authService.Register(ctx, "Alice", "alice@test.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Alice", resp.User.Name)
	})

	t.Run("Failed - ErrEmailTaken", func(t *testing.T) {
		userRepo, _, authService := setupAuthServiceMocks(t)

		userRepo.EXPECT().FindByEmail(ctx, "alice@test.com").Return(&model.User{Email: "alice@test.com"}, nil).Once()

		_, err := authService.Register(ctx, "Alice", "alice@test.com", "secret123")

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &model.User{
		UserID:       uuid.New(),
		Name:         "Bob",
		Email:        "bob@test.com",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		userRepo, sessions, authService := setupAuthServiceMocks(t)

		userRepo.EXPECT().FindByEmail(ctx, "bob@test.com").Return(storedUser, nil).Once()
		sessions.EXPECT().Create(ctx, mock.Anything, storedUser.UserID, sessionTTL).Return(nil).Once()

		resp, err := authService.Login(ctx, "bob@test.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, storedUser.UserID, resp.User.UserID)
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		userRepo, _, authService := setupAuthServiceMocks(t)

		userRepo.EXPECT().FindByEmail(ctx, "bob@test.com").Return(storedUser, nil).Once()

		_, err := authService.Login(ctx, "bob@test.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failed - unknown email", func(t *testing.T) {
		userRepo, _, authService := setupAuthServiceMocks(t)

		// 不洩漏帳號是否存在，一律回 ErrInvalidCredentials
		userRepo.EXPECT().FindByEmail(ctx, "ghost@test.com").Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := authService.Login(ctx, "ghost@test.com", "secret123")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	_, sessions, authService := setupAuthServiceMocks(t)

	sessions.EXPECT().Revoke(ctx, "token-abc").Return(nil).Once()

	err := authService.Logout(ctx, "token-abc")

	require.NoError(t, err)
}

func TestAuthService_ResolveToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		_, sessions, authService := setupAuthServiceMocks(t)

		sessions.EXPECT().Resolve(ctx, "token-abc", sessionTTL).Return(userID, nil).Once()

		resolved, err := authService.ResolveToken(ctx, "token-abc")

		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})

	t.Run("Failed - ErrInvalidToken", func(t *testing.T) {
		_, sessions, authService := setupAuthServiceMocks(t)

		sessions.EXPECT().Resolve(ctx, "expired", sessionTTL).Return(uuid.Nil, apperrors.ErrInvalidToken).Once()

		_, err := authService.ResolveToken(ctx, "expired")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
