package transfer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockRegistryReturnsSameHandle(t *testing.T) {
	registry := NewLockRegistry()

	first := registry.Get("acc-1")
	second := registry.Get("acc-1")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.NotSame(t, first, registry.Get("acc-2"))
}

func TestLockRegistryConcurrentFirstAccess(t *testing.T) {
	registry := NewLockRegistry()

	const callers = 64
	handles := make(chan *AccountLock, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handles <- registry.Get("acc-contended")
		}()
	}
	wg.Wait()
	close(handles)

	reference := registry.Get("acc-contended")
	for h := range handles {
		assert.Same(t, reference, h)
	}
}

func TestLockRegistryEvict(t *testing.T) {
	registry := NewLockRegistry()

	before := registry.Get("acc-1")
	registry.Evict("acc-1")
	after := registry.Get("acc-1")

	assert.NotSame(t, before, after)
}

func TestAccountLockTimedAcquisition(t *testing.T) {
	lock := newAccountLock()

	require.True(t, lock.TryLock(10*time.Millisecond))

	// Held elsewhere: a bounded wait must give up, not block forever.
	start := time.Now()
	require.False(t, lock.TryLock(30*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	lock.Unlock()
	require.True(t, lock.TryLock(10*time.Millisecond))
	lock.Unlock()
}

func TestAccountLockUnlockWithoutLockPanics(t *testing.T) {
	lock := newAccountLock()
	assert.Panics(t, func() { lock.Unlock() })
}
