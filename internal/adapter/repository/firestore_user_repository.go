package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("User", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

// Update writes the editable profile fields. Empty strings are skipped so a
// partial form never clears stored values.
func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	updateData := map[string]interface{}{
		"name":           user.Name,
		"userType":       user.UserType,
		"state":          user.State,
		"experience":     user.Experience,
		"contactDetails": user.ContactDetails,
		"photoURL":       user.PhotoURL,
		"canSellStamps":  user.CanSellStamps,
		"canSellCoins":   user.CanSellCoins,
		"canSellNotes":   user.CanSellNotes,
		"updatedAt":      time.Now(),
	}

	cleanUpdateData := make(map[string]interface{}, len(updateData))
	for key, value := range updateData {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		cleanUpdateData[key] = value
	}

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, cleanUpdateData, firestore.MergeAll)
	if err != nil {
		logger.Error("firestore user update failed for %s: %v", user.ID, err)
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

func (r *firestoreUserRepository) SetRole(ctx context.Context, id, role string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return getError("User", err)
	}
	return nil
}
