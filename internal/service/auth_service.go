package service

import (
	"context"
	"errors"
	"time"

	"eventify/internal/cache"
	"eventify/internal/model"
	"eventify/internal/repository"
	apperrors "eventify/pkg/app_errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*model.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// ResolveToken token 換回 userID，auth middleware 用
	ResolveToken(ctx context.Context, token string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params model.UpdateUserParams) (*model.User, error)
}

type AuthServiceImpl struct {
	repo     repository.UserRepository
	sessions cache.SessionStore
	ttl      time.Duration
}

func NewAuthService(repo repository.UserRepository, sessions cache.SessionStore, ttl time.Duration) AuthService {
	return &AuthServiceImpl{
		repo:     repo,
		sessions: sessions,
		ttl:      ttl,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issueToken(ctx, created)
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

func (s *AuthServiceImpl) issueToken(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	token := uuid.New().String()
	if err := s.sessions.Create(ctx, token, user.UserID, s.ttl); err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *AuthServiceImpl) ResolveToken(ctx context.Context, token string) (uuid.UUID, error) {
	return s.sessions.Resolve(ctx, token, s.ttl)
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params model.UpdateUserParams) (*model.User, error) {
	return s.repo.Update(ctx, userID, params)
}
