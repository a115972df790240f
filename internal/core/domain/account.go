package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a monetary account. Balances are decimal to avoid float
// rounding on money and must never go negative.
type Account struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// TransferRequest is the ephemeral payload of one transfer attempt.
// It is never persisted.
type TransferRequest struct {
	AccountFrom string          `json:"accountFrom"`
	AccountTo   string          `json:"accountTo"`
	Amount      decimal.Decimal `json:"amount"`
}
