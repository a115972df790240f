package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Create(ctx, &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	account, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "acc-1", account.ID)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	store := NewMemoryStore()

	account, err := store.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestMemoryStoreDuplicateCreate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Account{ID: "acc-1", Balance: decimal.Zero}))

	err := store.Create(ctx, &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(5)})
	var dup *DuplicateAccountError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "acc-1", dup.ID)
	assert.EqualError(t, err, "Account id acc-1 already exists!")

	// The original record is untouched.
	account, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.Zero))
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(100)}))

	leaked, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	leaked.Balance = decimal.NewFromInt(-999)

	fresh, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, fresh.Balance.Equal(decimal.NewFromInt(100)))
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(100)}))
	require.NoError(t, store.Create(ctx, &domain.Account{ID: "acc-2", Balance: decimal.NewFromInt(100)}))

	err := store.Update(ctx,
		&domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(40)},
		&domain.Account{ID: "acc-2", Balance: decimal.NewFromInt(160)})
	require.NoError(t, err)

	a1, _ := store.Get(ctx, "acc-1")
	a2, _ := store.Get(ctx, "acc-2")
	assert.True(t, a1.Balance.Equal(decimal.NewFromInt(40)))
	assert.True(t, a2.Balance.Equal(decimal.NewFromInt(160)))
}

func TestMemoryStoreConcurrentCreates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Create(ctx, &domain.Account{
				ID:      fmt.Sprintf("acc-%02d", i),
				Balance: decimal.NewFromInt(int64(i)),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		account, err := store.Get(ctx, fmt.Sprintf("acc-%02d", i))
		require.NoError(t, err)
		require.NotNil(t, account)
	}
}

func TestMemoryStoreConcurrentDuplicateCreate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const racers = 20
	var wg sync.WaitGroup
	failures := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Create(ctx, &domain.Account{ID: "contended", Balance: decimal.Zero}); err != nil {
				failures <- err
			}
		}()
	}
	wg.Wait()
	close(failures)

	// Exactly one winner; everyone else sees the duplicate error.
	assert.Len(t, failures, racers-1)
	for err := range failures {
		var dup *DuplicateAccountError
		assert.ErrorAs(t, err, &dup)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Account{ID: "acc-1", Balance: decimal.Zero}))
	store.Clear()

	account, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Nil(t, account)
}
