package postgres

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/pkg/errors"
)

const (
	constraintBalance     = "accounts_balance_check"
	constraintUserBooking = "event_bookings_user_event_key"
)

// mapError converts pgx errors into domain sentinels or AppErrors. Context
// errors pass through untouched.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return err
	}

	if stderrors.Is(err, pgx.ErrNoRows) {
		return errors.NotFound(resource, err)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == constraintUserBooking {
				return entity.ErrAlreadyBooked
			}
			return errors.Conflict(resource+" already exists", err)
		case "23503": // foreign_key_violation
			return errors.NotFound(resource, err)
		case "23514": // check_violation
			if pgErr.ConstraintName == constraintBalance {
				return entity.ErrInsufficientFunds
			}
			return errors.BadRequest("Invalid "+resource, err)
		}
	}

	return errors.Internal("Database error on "+resource, err)
}
