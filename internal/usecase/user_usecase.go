package usecase

import (
	"context"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// GetPublicProfile hides contact details unless the viewer owns the profile.
func (uc *UserUseCase) GetPublicProfile(ctx context.Context, userID, viewerID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if viewerID == userID {
		return user, nil
	}
	return user.Public(), nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.UserType != nil && *update.UserType != "" && !validUserType(*update.UserType) {
		return nil, errors.BadRequest("user type must be one of: collector dealer society", nil)
	}

	user.Merge(update)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) SetRole(ctx context.Context, userID, role string) (*entity.User, error) {
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, errors.BadRequest("role must be one of: user admin", nil)
	}

	if err := uc.userRepo.SetRole(ctx, userID, role); err != nil {
		return nil, err
	}
	if err := uc.firebaseAuth.SetAdminClaim(ctx, userID, role == entity.RoleAdmin); err != nil {
		return nil, errors.Internal("Failed to update role claim", err)
	}

	return uc.userRepo.GetByID(ctx, userID)
}

func validUserType(t string) bool {
	switch t {
	case entity.UserTypeCollector, entity.UserTypeDealer, entity.UserTypeSociety:
		return true
	}
	return false
}
