package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/internal/adapter/postgres"
	"philatelysamaaj/internal/adapter/postgres/testhelper"
	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
)

func TestLedger_ConcurrentPurchasesNeverOverdraw(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ledger := postgres.NewLedgerRepository(pool)
	accounts := usecase.NewAccountUseCase(ledger, postgres.NewTxManager(pool))
	ctx := context.Background()

	userID := uuid.NewString()
	_, err := accounts.Credit(ctx, userID, 100, "seed")
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := accounts.Purchase(ctx, userID, 30, "item")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, "INSUFFICIENT_FUNDS"):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 2, rejected)

	account, err := accounts.GetAccount(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 10, account.Balance, 0.001)

	entries, total, err := ledger.ListEntries(ctx, userID, repository.LedgerFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, entity.LedgerPurchase, entries[0].Type)
}

func TestLedger_BookingIsUniquePerUser(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ledger := postgres.NewLedgerRepository(pool)
	ctx := context.Background()

	userID := uuid.NewString()
	_, err := ledger.EnsureAccount(ctx, userID)
	require.NoError(t, err)

	first := &entity.Booking{EventID: "expo", UserID: userID}
	require.NoError(t, ledger.CreateBooking(ctx, first))
	assert.NotZero(t, first.ID)

	err = ledger.CreateBooking(ctx, &entity.Booking{EventID: "expo", UserID: userID})
	assert.ErrorIs(t, err, entity.ErrAlreadyBooked)

	bookings, err := ledger.ListBookings(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestTxManager_RollbackLeavesNoTrace(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ledger := postgres.NewLedgerRepository(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()

	userID := uuid.NewString()
	_, err := ledger.EnsureAccount(ctx, userID)
	require.NoError(t, err)

	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := ledger.ApplyEntry(ctx, &entity.LedgerEntry{UserID: userID, Type: entity.LedgerDeposit, Amount: 50}); err != nil {
			return err
		}
		return entity.ErrInvalidAmount
	})
	require.ErrorIs(t, err, entity.ErrInvalidAmount)

	account, err := ledger.LockAccount(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, account.Balance)
}
