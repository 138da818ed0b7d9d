package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	accountColumns = []string{"user_id", "balance", "currency", "created_at", "updated_at"}
	entryColumns   = []string{"id", "user_id", "type", "amount", "balance_after", "reference", "created_at"}
	bookingColumns = []string{"id", "event_id", "user_id", "amount", "ledger_entry_id", "created_at"}
)

// LedgerRepository stores accounts, ledger entries and event bookings. Calls
// made with a context from TxManager.RunInTx join that transaction.
type LedgerRepository struct {
	db DB
}

func NewLedgerRepository(db DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

var _ repository.LedgerRepository = (*LedgerRepository)(nil)

func (r *LedgerRepository) q(ctx context.Context) Querier {
	return QuerierFromCtx(ctx, r.db)
}

func (r *LedgerRepository) EnsureAccount(ctx context.Context, userID string) (*entity.Account, error) {
	query, args, err := psql.
		Insert("accounts").
		Columns("user_id", "currency").
		Values(userID, entity.DefaultCurrency).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING user_id, balance, currency, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ensure account: %w", err)
	}

	account, err := scanAccount(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "Account")
	}
	return account, nil
}

func (r *LedgerRepository) LockAccount(ctx context.Context, userID string) (*entity.Account, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock account: %w", err)
	}

	account, err := scanAccount(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "Account")
	}
	return account, nil
}

// ApplyEntry moves the balance and appends the entry. The balance CHECK
// constraint rejects any debit that would go negative.
func (r *LedgerRepository) ApplyEntry(ctx context.Context, entry *entity.LedgerEntry) (*entity.LedgerEntry, error) {
	q := r.q(ctx)

	update, args, err := psql.
		Update("accounts").
		Set("balance", squirrel.Expr("balance + ?", entry.Amount)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": entry.UserID}).
		Suffix("RETURNING balance").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build balance update: %w", err)
	}

	var balance float64
	if err := q.QueryRow(ctx, update, args...).Scan(&balance); err != nil {
		return nil, mapError(err, "Account")
	}

	insert, args, err := psql.
		Insert("ledger_entries").
		Columns("user_id", "type", "amount", "balance_after", "reference").
		Values(entry.UserID, entry.Type, entry.Amount, balance, entry.Reference).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entry insert: %w", err)
	}

	out := *entry
	out.BalanceAfter = balance
	if err := q.QueryRow(ctx, insert, args...).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, mapError(err, "Ledger entry")
	}
	return &out, nil
}

// ListEntries returns the newest entries first together with the total count
// for the filter.
func (r *LedgerRepository) ListEntries(ctx context.Context, userID string, filter repository.LedgerFilter) ([]*entity.LedgerEntry, int64, error) {
	where := squirrel.Eq{"user_id": userID}
	if filter.Type != "" {
		where["type"] = filter.Type
	}

	q := r.q(ctx)

	countSQL, args, err := psql.Select("count(*)").From("ledger_entries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build entry count: %w", err)
	}
	var total int64
	if err := q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "Ledger entry")
	}

	sel := psql.
		Select(entryColumns...).
		From("ledger_entries").
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build entry list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err, "Ledger entry")
	}
	defer rows.Close()

	entries := make([]*entity.LedgerEntry, 0)
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Amount, &e.BalanceAfter, &e.Reference, &e.CreatedAt); err != nil {
			return nil, 0, mapError(err, "Ledger entry")
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "Ledger entry")
	}

	return entries, total, nil
}

func (r *LedgerRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	var entryID *int64
	if booking.EntryID != 0 {
		entryID = &booking.EntryID
	}

	query, args, err := psql.
		Insert("event_bookings").
		Columns("event_id", "user_id", "amount", "ledger_entry_id").
		Values(booking.EventID, booking.UserID, booking.Amount, entryID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build booking insert: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return mapError(err, "Booking")
	}
	return nil
}

func (r *LedgerRepository) ListBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	query, args, err := psql.
		Select(bookingColumns...).
		From("event_bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking list: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "Booking")
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		var (
			b       entity.Booking
			entryID *int64
		)
		if err := rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Amount, &entryID, &b.CreatedAt); err != nil {
			return nil, mapError(err, "Booking")
		}
		if entryID != nil {
			b.EntryID = *entryID
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "Booking")
	}
	return bookings, nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	if err := row.Scan(&a.UserID, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
