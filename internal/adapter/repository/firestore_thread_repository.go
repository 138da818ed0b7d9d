package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type firestoreThreadRepository struct {
	client *firestore.Client
}

func NewFirestoreThreadRepository(client *firestore.Client) repository.ThreadRepository {
	return &firestoreThreadRepository{
		client: client,
	}
}

func (r *firestoreThreadRepository) GetByID(ctx context.Context, id string) (*entity.Thread, error) {
	doc, err := r.client.Collection(threadsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("Thread", err)
	}
	return decodeThread(doc)
}

func (r *firestoreThreadRepository) AppendMessage(ctx context.Context, seed *entity.Thread, msg entity.ThreadMessage) (*entity.Thread, error) {
	ref := r.client.Collection(threadsCollection).Doc(seed.ID)

	var result *entity.Thread
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)

		var thread *entity.Thread
		switch {
		case status.Code(err) == codes.NotFound:
			cp := *seed
			thread = &cp
		case err != nil:
			return err
		default:
			if thread, err = decodeThread(doc); err != nil {
				return err
			}
		}

		thread.Append(msg)
		result = thread
		return tx.Set(ref, thread)
	})
	if err != nil {
		return nil, errors.Internal("Failed to send message", err)
	}
	return result, nil
}

// ListByParticipant returns the user's threads, most recently active first.
func (r *firestoreThreadRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.Thread, error) {
	iter := r.client.Collection(threadsCollection).
		Where("participants", "array-contains", userID).
		Documents(ctx)
	defer iter.Stop()

	threads := make([]*entity.Thread, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list threads", err)
		}

		thread, err := decodeThread(doc)
		if err != nil {
			logger.Warn("skipping malformed thread %s: %v", doc.Ref.ID, err)
			continue
		}
		threads = append(threads, thread)
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastMessageAt.After(threads[j].LastMessageAt)
	})
	return threads, nil
}

func decodeThread(doc *firestore.DocumentSnapshot) (*entity.Thread, error) {
	var thread entity.Thread
	if err := doc.DataTo(&thread); err != nil {
		return nil, errors.Internal("Failed to parse thread", err)
	}
	thread.ID = doc.Ref.ID
	if thread.SellerMessages == nil {
		thread.SellerMessages = []entity.ThreadMessage{}
	}
	if thread.BuyerMessages == nil {
		thread.BuyerMessages = []entity.ThreadMessage{}
	}
	return &thread, nil
}
