package transfer

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/adapter/storage"
)

// ExecutionEngine performs the debit and credit of a transfer under a
// single critical section shared by every execution in the process. That
// serializes all balance mutations system-wide, on top of the per-account
// locks the orchestrator already holds, so no execution can observe either
// account between the authoritative funds check and the write-back.
type ExecutionEngine struct {
	mu    sync.Mutex
	store storage.AccountStore
}

func NewExecutionEngine(store storage.AccountStore) *ExecutionEngine {
	return &ExecutionEngine{store: store}
}

// Execute moves amount from one account to the other. Both records are
// reloaded from the store inside the critical section; the pre-lock
// validation result is never trusted here.
func (e *ExecutionEngine) Execute(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	accountFrom, err := e.store.Get(ctx, fromID)
	if err != nil {
		return err
	}
	accountTo, err := e.store.Get(ctx, toID)
	if err != nil {
		return err
	}
	if accountFrom == nil || accountTo == nil {
		return &Error{Kind: KindInvalidAccounts, Message: "One or both accounts are invalid."}
	}

	// Authoritative funds check. Balances may have changed since the
	// pre-lock validation ran.
	if accountFrom.Balance.LessThan(amount) {
		return &Error{Kind: KindInsufficientFunds, Message: "Insufficient funds in account " + accountFrom.ID}
	}

	// Transferring an account to itself nets to zero, so the balance is
	// left untouched rather than debited and credited through two stale
	// copies of the same record.
	if fromID == toID {
		return nil
	}

	accountFrom.Balance = accountFrom.Balance.Sub(amount)
	accountTo.Balance = accountTo.Balance.Add(amount)

	return e.store.Update(ctx, accountFrom, accountTo)
}
