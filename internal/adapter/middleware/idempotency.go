package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

type cachedResponse struct {
	status      int
	body        []byte
	contentType string
	storedAt    time.Time
}

// IdempotencyStore caches responses keyed by the Idempotency-Key header so
// a resubmitted transfer replays the original outcome instead of moving
// funds twice. Entries expire lazily after the TTL.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]cachedResponse
	ttl     time.Duration
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		entries: make(map[string]cachedResponse),
		ttl:     ttl,
	}
}

func (s *IdempotencyStore) get(key string) (cachedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return cachedResponse{}, false
	}
	if time.Since(entry.storedAt) > s.ttl {
		delete(s.entries, key)
		return cachedResponse{}, false
	}
	return entry, true
}

func (s *IdempotencyStore) put(key string, entry cachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
}

// Idempotency replays a cached response for a repeated Idempotency-Key.
// Requests without the header pass straight through.
func Idempotency(store *IdempotencyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")
		if key == "" {
			return c.Next()
		}

		if cached, ok := store.get(key); ok {
			slog.Info("🛑 idempotency hit, returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", cached.contentType)
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Copy the body: fasthttp reuses response buffers between requests.
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		store.put(key, cachedResponse{
			status:      c.Response().StatusCode(),
			body:        body,
			contentType: string(c.Response().Header.ContentType()),
			storedAt:    time.Now(),
		})
		return nil
	}
}
