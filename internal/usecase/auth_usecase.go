package usecase

import (
	"context"
	"time"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
)

// AuthProvider is the slice of the identity provider the auth flow needs.
// Implemented by infrastructure/firebase.AuthClient.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
}

// New accounts start with pocket money so the first shop visit works.
const (
	startingXenocoins int64 = 1000
	startingCash      int64 = 0
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	provider AuthProvider
}

func NewAuthUseCase(userRepo repository.UserRepository, provider AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		provider: provider,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Phone    string
	Language string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates the identity-provider account and the player record as a
// pair. The username is the public handle, so it must be free first.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if existing, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, errors.Conflict("Username already taken", nil)
	}

	uid, err := uc.provider.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create account", err)
	}

	language := input.Language
	if language == "" {
		language = "en-US"
	}

	now := time.Now()
	user := &entity.User{
		ID:             uid,
		Email:          input.Email,
		Username:       input.Username,
		Phone:          input.Phone,
		Language:       language,
		Xenocoins:      startingXenocoins,
		Cash:           startingCash,
		TotalXenocoins: startingXenocoins,
		CreatedAt:      now,
		LastLogin:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create player record", err)
	}

	token, err := uc.provider.GenerateToken(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}
