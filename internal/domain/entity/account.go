package entity

import (
	"time"
)

const (
	LedgerPurchase = "purchase"
	LedgerDeposit  = "deposit"
	LedgerBooking  = "booking"

	DefaultCurrency = "INR"
)

type Account struct {
	UserID    string    `json:"user_id"`
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerEntry is one balance movement. Amount is signed: debits are negative.
type LedgerEntry struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	BalanceAfter float64   `json:"balance_after"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanDebit reports whether amount can leave the account without going negative.
func (a *Account) CanDebit(amount float64) bool {
	return amount > 0 && a.Balance >= amount
}
