package usecase

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type AccountUseCase struct {
	ledgerRepo repository.LedgerRepository
	txManager  repository.TxManager
}

func NewAccountUseCase(ledgerRepo repository.LedgerRepository, txManager repository.TxManager) *AccountUseCase {
	return &AccountUseCase{
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

func (uc *AccountUseCase) GetAccount(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := uc.ledgerRepo.EnsureAccount(ctx, userID)
	if err != nil {
		return nil, domainError(err)
	}
	return account, nil
}

// Purchase debits amount. The balance check runs under a row lock, so two
// concurrent purchases cannot both spend the same funds.
func (uc *AccountUseCase) Purchase(ctx context.Context, userID string, amount float64, reference string) (*entity.LedgerEntry, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Please enter a valid purchase amount", nil)
	}

	var entry *entity.LedgerEntry
	err := uc.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.ledgerRepo.EnsureAccount(ctx, userID); err != nil {
			return err
		}
		account, err := uc.ledgerRepo.LockAccount(ctx, userID)
		if err != nil {
			return err
		}
		if !account.CanDebit(amount) {
			return entity.ErrInsufficientFunds
		}

		entry, err = uc.ledgerRepo.ApplyEntry(ctx, &entity.LedgerEntry{
			UserID:    userID,
			Type:      entity.LedgerPurchase,
			Amount:    -amount,
			Reference: reference,
		})
		return err
	})
	if err != nil {
		return nil, domainError(err)
	}

	logger.Info("purchase of %.2f by %s", amount, userID)
	return entry, nil
}

// Credit adds funds to an account. Only administrators reach this.
func (uc *AccountUseCase) Credit(ctx context.Context, userID string, amount float64, reference string) (*entity.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domainError(entity.ErrInvalidAmount)
	}

	var entry *entity.LedgerEntry
	err := uc.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.ledgerRepo.EnsureAccount(ctx, userID); err != nil {
			return err
		}
		if _, err := uc.ledgerRepo.LockAccount(ctx, userID); err != nil {
			return err
		}

		var err error
		entry, err = uc.ledgerRepo.ApplyEntry(ctx, &entity.LedgerEntry{
			UserID:    userID,
			Type:      entity.LedgerDeposit,
			Amount:    amount,
			Reference: reference,
		})
		return err
	})
	if err != nil {
		return nil, domainError(err)
	}

	logger.Info("credited %.2f to %s", amount, userID)
	return entry, nil
}

func (uc *AccountUseCase) History(ctx context.Context, userID string, entryType string, limit, offset int) ([]*entity.LedgerEntry, int64, error) {
	switch entryType {
	case "", entity.LedgerPurchase, entity.LedgerDeposit, entity.LedgerBooking:
	default:
		return nil, 0, errors.BadRequest("type must be one of: purchase deposit booking", nil)
	}

	entries, total, err := uc.ledgerRepo.ListEntries(ctx, userID, repository.LedgerFilter{
		Type:   entryType,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, domainError(err)
	}
	return entries, total, nil
}
