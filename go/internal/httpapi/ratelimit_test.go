package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

type recordingStats struct {
	mu     sync.Mutex
	events []RateLimitEvent
}

func (s *recordingStats) Record(_ context.Context, ev RateLimitEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestRateLimitRejectsOverBudget(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	store := NewLimiterStore(0.5, 1, WithLimiterClock(clock))
	stats := &recordingStats{}

	calls := 0
	handler := RateLimit(RateLimitOptions{Store: store, Stats: stats, KeyHeader: "X-API-Key"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusOK)
		}))

	send := func(remote, apiKey string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/atletas/", nil)
		req.RemoteAddr = remote
		if apiKey != "" {
			req.Header.Set("X-API-Key", apiKey)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", "").Code)

	rejected := send("10.0.0.1:5678", "")
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, "2", rejected.Header().Get("Retry-After"))

	// a different key has its own bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", "client-a").Code)

	clock.Advance(2 * time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234", "").Code)

	assert.Equal(t, 3, calls)
	assert.Len(t, stats.events, 4)
	assert.False(t, stats.events[1].Allowed)
	assert.Equal(t, "10.0.0.1", stats.events[1].Key)
}

func TestLimiterStoreCleanup(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewLimiterStore(10, 10, WithLimiterClock(clock), WithIdleTTL(time.Minute))

	store.Reserve("a")
	clock.Advance(30 * time.Second)
	store.Reserve("b")
	clock.Advance(45 * time.Second)

	store.Cleanup()
	assert.Equal(t, 1, store.Len())
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4000"
	assert.Equal(t, "192.168.1.5", ClientKey(req, "X-API-Key"))

	req.Header.Set("X-API-Key", " key-1 ")
	assert.Equal(t, "key-1", ClientKey(req, "X-API-Key"))
	assert.Equal(t, "192.168.1.5", ClientKey(req, ""))
}
