// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"sync"
	"time"
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

// MemoryStore is a process-local RateLimitStore. Expired entries are swept
// during Increment at most once per window.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
	now       func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

// Increment implements RateLimitStore.
func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.After(s.nextSweep) {
		s.evictExpired(now)
		s.nextSweep = now.Add(window)
	}

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

// evictExpired removes entries whose window has ended. Callers hold s.mu.
func (s *MemoryStore) evictExpired(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}
