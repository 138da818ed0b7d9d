package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/geo"
	"philatelysamaaj/pkg/logger"
)

type EventUseCase struct {
	eventRepo  repository.EventRepository
	ledgerRepo repository.LedgerRepository
	txManager  repository.TxManager
	now        func() time.Time
}

func NewEventUseCase(eventRepo repository.EventRepository, ledgerRepo repository.LedgerRepository, txManager repository.TxManager) *EventUseCase {
	return &EventUseCase{
		eventRepo:  eventRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		now:        time.Now,
	}
}

type CreateEventInput struct {
	Name        string
	Description string
	Organizer   string
	Website     string
	Venue       string
	Location    geo.Coordinate
	StartDate   time.Time
	EndDate     time.Time
	Price       float64
}

func (uc *EventUseCase) CreateEvent(ctx context.Context, createdBy string, input CreateEventInput) (*entity.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("name is required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("price must not be negative", nil)
	}
	if input.EndDate.IsZero() {
		input.EndDate = input.StartDate
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, errors.BadRequest("end date must not be before start date", nil)
	}

	now := uc.now()
	event := &entity.Event{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Organizer:   input.Organizer,
		Website:     input.Website,
		Venue:       input.Venue,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Price:       input.Price,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *EventUseCase) GetEvent(ctx context.Context, id string, near *geo.Coordinate) (*entity.EventWithDistance, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withDistance(event, near), nil
}

// ListEvents sorts by distance when the viewer's position is known, otherwise
// by start date.
func (uc *EventUseCase) ListEvents(ctx context.Context, near *geo.Coordinate, upcomingOnly bool) ([]*entity.EventWithDistance, error) {
	var endsAfter *time.Time
	if upcomingOnly {
		now := uc.now()
		endsAfter = &now
	}

	events, err := uc.eventRepo.List(ctx, endsAfter)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.EventWithDistance, 0, len(events))
	for _, e := range events {
		out = append(out, withDistance(e, near))
	}

	if near != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return *out[i].DistanceKm < *out[j].DistanceKm
		})
	}
	return out, nil
}

func withDistance(e *entity.Event, near *geo.Coordinate) *entity.EventWithDistance {
	out := &entity.EventWithDistance{Event: e}
	if near != nil {
		d := geo.DistanceKm(*near, e.Location)
		out.DistanceKm = &d
	}
	return out
}

// BookEvent debits the ticket price and records the booking in one
// transaction. Either both happen or neither does.
func (uc *EventUseCase) BookEvent(ctx context.Context, eventID, userID string) (*entity.Booking, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.EndDate.IsZero() && event.EndDate.Before(uc.now()) {
		return nil, errors.BadRequest("This event has already ended", nil)
	}

	booking := &entity.Booking{
		EventID: eventID,
		UserID:  userID,
		Amount:  event.Price,
	}

	err = uc.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.ledgerRepo.EnsureAccount(ctx, userID); err != nil {
			return err
		}
		account, err := uc.ledgerRepo.LockAccount(ctx, userID)
		if err != nil {
			return err
		}

		if event.Price > 0 {
			if !account.CanDebit(event.Price) {
				return entity.ErrInsufficientFunds
			}
			entry, err := uc.ledgerRepo.ApplyEntry(ctx, &entity.LedgerEntry{
				UserID:    userID,
				Type:      entity.LedgerBooking,
				Amount:    -event.Price,
				Reference: fmt.Sprintf("event:%s", eventID),
			})
			if err != nil {
				return err
			}
			booking.EntryID = entry.ID
		}

		return uc.ledgerRepo.CreateBooking(ctx, booking)
	})
	if err != nil {
		return nil, domainError(err)
	}

	logger.Info("user %s booked event %s", userID, eventID)
	return booking, nil
}

func (uc *EventUseCase) ListMyBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	bookings, err := uc.ledgerRepo.ListBookings(ctx, userID)
	if err != nil {
		return nil, domainError(err)
	}
	return bookings, nil
}
