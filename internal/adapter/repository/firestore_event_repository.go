package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type firestoreEventRepository struct {
	client *firestore.Client
}

func NewFirestoreEventRepository(client *firestore.Client) repository.EventRepository {
	return &firestoreEventRepository{
		client: client,
	}
}

func (r *firestoreEventRepository) Create(ctx context.Context, event *entity.Event) error {
	ref := r.client.Collection(eventsCollection).NewDoc()
	event.ID = ref.ID

	if _, err := ref.Set(ctx, event); err != nil {
		return errors.Internal("Failed to create event", err)
	}
	return nil
}

func (r *firestoreEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	doc, err := r.client.Collection(eventsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("Event", err)
	}

	var event entity.Event
	if err := doc.DataTo(&event); err != nil {
		return nil, errors.Internal("Failed to parse event", err)
	}
	event.ID = doc.Ref.ID
	return &event, nil
}

// List filters on endDate in Firestore and orders by startDate here, since a
// range filter forces the first sort key.
func (r *firestoreEventRepository) List(ctx context.Context, endsAfter *time.Time) ([]*entity.Event, error) {
	query := r.client.Collection(eventsCollection).Query
	if endsAfter != nil {
		query = query.Where("endDate", ">=", *endsAfter)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	events := make([]*entity.Event, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list events", err)
		}

		var event entity.Event
		if err := doc.DataTo(&event); err != nil {
			logger.Warn("skipping malformed event %s: %v", doc.Ref.ID, err)
			continue
		}
		event.ID = doc.Ref.ID
		events = append(events, &event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})
	return events, nil
}
