package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/adapter/storage"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

// DefaultLockTimeout bounds how long one lock acquisition may wait.
const DefaultLockTimeout = 5 * time.Second

// Outcome strings returned to callers. Exactly one per attempt.
const (
	outcomeCompleted   = "Transfer completed successfully."
	outcomeLockFailure = "Unable to acquire locks. Please try again later."
)

// NotificationSink receives fire-and-forget transfer notifications. The
// core never consumes a result; delivery failures must not affect a
// committed transfer.
type NotificationSink interface {
	Notify(account *domain.Account, message string)
}

// Service orchestrates one transfer attempt: pre-lock validation, ordered
// lock acquisition, atomic execution, and best-effort notification. Every
// internal failure is converted to a descriptive outcome string here; none
// escapes to the caller.
type Service struct {
	store       storage.AccountStore
	locks       *LockRegistry
	engine      *ExecutionEngine
	sink        NotificationSink
	lockTimeout time.Duration
}

func NewService(store storage.AccountStore, sink NotificationSink, lockTimeout time.Duration) *Service {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &Service{
		store:       store,
		locks:       NewLockRegistry(),
		engine:      NewExecutionEngine(store),
		sink:        sink,
		lockTimeout: lockTimeout,
	}
}

// TransferAmount runs one transfer attempt and returns its outcome string.
// Attempts are never retried automatically; resubmission is the caller's
// decision.
func (s *Service) TransferAmount(ctx context.Context, accountFromID, accountToID string, amount decimal.Decimal) string {
	if err := ValidateAmount(amount); err != nil {
		return failureOutcome(err)
	}

	accountFrom, err := s.store.Get(ctx, accountFromID)
	if err != nil {
		return s.unexpectedOutcome(accountFromID, accountToID, err)
	}
	accountTo, err := s.store.Get(ctx, accountToID)
	if err != nil {
		return s.unexpectedOutcome(accountFromID, accountToID, err)
	}

	if err := ValidateAccounts(accountFrom, accountTo); err != nil {
		return failureOutcome(err)
	}
	if err := ValidateSufficientFunds(accountFrom, amount); err != nil {
		return failureOutcome(err)
	}

	if !s.acquireLocks(accountFromID, accountToID) {
		slog.Warn("could not acquire transfer locks", "from", accountFromID, "to", accountToID)
		return outcomeLockFailure
	}
	defer s.releaseLocks(accountFromID, accountToID)

	slog.Info("attempting transfer",
		"amount", amount, "from", accountFromID, "to", accountToID)

	if err := s.engine.Execute(ctx, accountFromID, accountToID, amount); err != nil {
		var terr *Error
		if errors.As(err, &terr) {
			slog.Error("transfer failed", "reason", terr.Kind.String(), "from", accountFromID, "to", accountToID)
			return failureOutcome(terr)
		}
		return s.unexpectedOutcome(accountFromID, accountToID, err)
	}

	s.sendNotifications(accountFrom, accountTo, amount)
	return outcomeCompleted
}

// acquireLocks takes both account locks in lexicographic id order so every
// concurrent transfer agrees on acquisition order and no circular wait can
// form. Each acquisition waits at most lockTimeout; on failure anything
// already held is released.
func (s *Service) acquireLocks(accountFromID, accountToID string) bool {
	firstID, secondID := orderIDs(accountFromID, accountToID)

	first := s.locks.Get(firstID)
	if !first.TryLock(s.lockTimeout) {
		return false
	}

	// A self-transfer holds a single lock; taking the same handle twice
	// would deadlock against ourselves.
	if firstID == secondID {
		return true
	}

	second := s.locks.Get(secondID)
	if !second.TryLock(s.lockTimeout) {
		first.Unlock()
		return false
	}
	return true
}

func (s *Service) releaseLocks(accountFromID, accountToID string) {
	firstID, secondID := orderIDs(accountFromID, accountToID)
	if firstID != secondID {
		s.locks.Get(secondID).Unlock()
	}
	s.locks.Get(firstID).Unlock()
}

func (s *Service) sendNotifications(accountFrom, accountTo *domain.Account, amount decimal.Decimal) {
	s.sink.Notify(accountFrom, fmt.Sprintf("Amount %s transferred to %s", amount, accountTo.ID))
	slog.Info("notified sender", "account", accountFrom.ID, "amount", amount, "to", accountTo.ID)
	s.sink.Notify(accountTo, fmt.Sprintf("Amount %s received from %s", amount, accountFrom.ID))
	slog.Info("notified recipient", "account", accountTo.ID, "amount", amount, "from", accountFrom.ID)
}

func (s *Service) unexpectedOutcome(accountFromID, accountToID string, err error) string {
	slog.Error("unexpected error during transfer",
		"error", err, "from", accountFromID, "to", accountToID)
	return "Unexpected error during transfer: " + err.Error()
}

func failureOutcome(err error) string {
	return "Transfer failed: " + err.Error()
}

// orderIDs returns the pair in canonical (lexicographic) order. The
// ordering is commutative: (a, b) and (b, a) yield the same result.
func orderIDs(a, b string) (string, string) {
	if a <= b {
		return a, b
	}
	return b, a
}
