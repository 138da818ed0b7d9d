package repository

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

// TxManager runs fn inside a single relational transaction. Repositories
// called with the ctx passed to fn join that transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type LedgerFilter struct {
	Type   string
	Limit  int
	Offset int
}

type LedgerRepository interface {
	// EnsureAccount creates a zero-balance account on first use.
	EnsureAccount(ctx context.Context, userID string) (*entity.Account, error)
	// LockAccount reads the account and holds a row lock until the transaction ends.
	LockAccount(ctx context.Context, userID string) (*entity.Account, error)
	// ApplyEntry moves the balance by entry.Amount and records the entry.
	ApplyEntry(ctx context.Context, entry *entity.LedgerEntry) (*entity.LedgerEntry, error)
	ListEntries(ctx context.Context, userID string, filter LedgerFilter) ([]*entity.LedgerEntry, int64, error)
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	ListBookings(ctx context.Context, userID string) ([]*entity.Booking, error)
}
