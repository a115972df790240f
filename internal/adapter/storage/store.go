package storage

import (
	"context"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

// AccountStore is the port the core talks to. Two adapters implement it:
// the in-memory store (default) and the Postgres store (when DATABASE_URL
// is configured). Both must be safe under concurrent calls.
type AccountStore interface {
	// Create inserts the account if its id is unseen and fails with
	// *DuplicateAccountError otherwise.
	Create(ctx context.Context, account *domain.Account) error

	// Get returns the account for id, or (nil, nil) when no such
	// account exists.
	Get(ctx context.Context, id string) (*domain.Account, error)

	// Update writes the given records back. Callers are expected to
	// hold the relevant transfer locks; the store itself does not
	// order concurrent writers.
	Update(ctx context.Context, accounts ...*domain.Account) error
}

// DuplicateAccountError is returned by Create when the id already exists.
type DuplicateAccountError struct {
	ID string
}

func (e *DuplicateAccountError) Error() string {
	return "Account id " + e.ID + " already exists!"
}
