package storage

import (
	"context"
	"sync"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

// MemoryStore keeps accounts in a mutex-guarded map. It hands out copies,
// never internal pointers, so callers cannot mutate a balance behind the
// store's back.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]domain.Account)}
}

// Create inserts the account if absent.
func (s *MemoryStore) Create(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.ID]; exists {
		return &DuplicateAccountError{ID: account.ID}
	}
	s.accounts[account.ID] = *account
	return nil
}

// Get returns a copy of the account, or (nil, nil) when absent.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

// Update writes the records back unconditionally.
func (s *MemoryStore) Update(_ context.Context, accounts ...*domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range accounts {
		s.accounts[account.ID] = *account
	}
	return nil
}

// Clear drops every account. Test and maintenance use only.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[string]domain.Account)
}
