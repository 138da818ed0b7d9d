package usecase

import (
	"context"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	now          func() time.Time
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		now:          time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	UserType string
}

type AuthResult struct {
	User   *entity.User `json:"user"`
	Tokens *AuthTokens  `json:"tokens"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use", nil)
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	userType := input.UserType
	if userType == "" {
		userType = entity.UserTypeCollector
	}

	now := uc.now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Name:      input.Name,
		UserType:  userType,
		Role:      entity.RoleUser,
		Provider:  "password",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	tokens, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("registered user %s", uid)
	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	tokens, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	user, err := uc.userRepo.GetByID(ctx, tokens.UID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	tokens, err := uc.firebaseAuth.RefreshIDToken(ctx, refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}
	return tokens, nil
}

// FederatedSignIn accepts an ID token minted by a federated provider (Google)
// and makes sure a profile exists for it.
func (uc *AuthUseCase) FederatedSignIn(ctx context.Context, idToken string) (*entity.User, error) {
	identity, err := uc.firebaseAuth.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, identity.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := uc.now()
	user = &entity.User{
		ID:        identity.UID,
		Email:     identity.Email,
		Name:      identity.Name,
		PhotoURL:  identity.Picture,
		Provider:  identity.Provider,
		UserType:  entity.UserTypeCollector,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	logger.Info("created profile for federated user %s via %s", identity.UID, identity.Provider)
	return user, nil
}
