package transfer

import (
	"sync"
	"time"
)

// AccountLock is an exclusive lock with a bounded-wait acquire. It is a
// one-slot channel semaphore rather than a sync.Mutex so acquisition can
// give up after a timeout.
type AccountLock struct {
	slot chan struct{}
}

func newAccountLock() *AccountLock {
	return &AccountLock{slot: make(chan struct{}, 1)}
}

// TryLock blocks until the lock is acquired or timeout elapses. It reports
// whether the lock was acquired.
func (l *AccountLock) TryLock(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case l.slot <- struct{}{}:
		return true
	case <-timer.C:
		return false
	}
}

// Unlock releases the lock. Unlocking a lock that is not held is a bug in
// the caller and panics, matching sync.Mutex behavior.
func (l *AccountLock) Unlock() {
	select {
	case <-l.slot:
	default:
		panic("transfer: unlock of unlocked AccountLock")
	}
}

// LockRegistry hands out one AccountLock per account id for the lifetime of
// the process. Handles are created lazily on first reference; concurrent
// first access yields exactly one handle per id.
type LockRegistry struct {
	locks sync.Map // account id -> *AccountLock
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{}
}

// Get returns the lock handle for id, creating it on first reference. All
// callers asking for the same id receive the same handle.
func (r *LockRegistry) Get(id string) *AccountLock {
	if l, ok := r.locks.Load(id); ok {
		return l.(*AccountLock)
	}
	l, _ := r.locks.LoadOrStore(id, newAccountLock())
	return l.(*AccountLock)
}

// Evict removes the handle for id. Maintenance use only: the caller must
// guarantee no in-flight transfer references the id at that instant, since
// no reference counting is performed.
func (r *LockRegistry) Evict(id string) {
	r.locks.Delete(id)
}
