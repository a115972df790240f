package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

// PostgresStore backs the AccountStore port with a single table:
//
//	CREATE TABLE accounts (
//	    id      TEXT PRIMARY KEY,
//	    balance NUMERIC NOT NULL CHECK (balance >= 0)
//	);
//
// Atomicity across the two balance writes of a transfer comes from the
// execution engine's critical section plus the transaction in Update.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, account *domain.Account) error {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO accounts (id, balance) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		account.ID, account.Balance.String())
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &DuplicateAccountError{ID: account.ID}
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	var balance string
	err := s.db.QueryRow(ctx,
		`SELECT balance::text FROM accounts WHERE id = $1`, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("corrupt balance for account %s: %w", id, err)
	}
	return &domain.Account{ID: id, Balance: amount}, nil
}

func (s *PostgresStore) Update(ctx context.Context, accounts ...*domain.Account) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, account := range accounts {
		if _, err := tx.Exec(ctx,
			`UPDATE accounts SET balance = $1 WHERE id = $2`,
			account.Balance.String(), account.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
