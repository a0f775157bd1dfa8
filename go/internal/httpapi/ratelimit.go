package httpapi

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// LimiterStore keeps one token bucket per client key and forgets keys that
// stay idle longer than the configured TTL.
type LimiterStore struct {
	mu           sync.Mutex
	entries      map[string]*limiterEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	clock        clockwork.Clock
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// LimiterOption configures a LimiterStore
type LimiterOption func(*LimiterStore)

// WithIdleTTL sets how long an unused key is kept.
func WithIdleTTL(d time.Duration) LimiterOption {
	return func(s *LimiterStore) { s.idleTTL = d }
}

// WithCleanupEvery sets the janitor interval.
func WithCleanupEvery(d time.Duration) LimiterOption {
	return func(s *LimiterStore) { s.cleanupEvery = d }
}

// WithLimiterClock replaces the wall clock, used by tests.
func WithLimiterClock(c clockwork.Clock) LimiterOption {
	return func(s *LimiterStore) { s.clock = c }
}

// NewLimiterStore creates a store allowing rps requests per second per key
// with the given burst.
func NewLimiterStore(rps float64, burst int, opts ...LimiterOption) *LimiterStore {
	s := &LimiterStore{
		entries:      make(map[string]*limiterEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
		clock:        clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reserve takes a token for key. It reports whether the request may proceed
// and, when it may not, how long the client should wait.
func (s *LimiterStore) Reserve(key string) (bool, time.Duration) {
	now := s.clock.Now()

	s.mu.Lock()
	ent, ok := s.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(s.rps, s.burst)}
		s.entries[key] = ent
	}
	ent.lastSeen = now
	s.mu.Unlock()

	if ent.lim.AllowN(now, 1) {
		return true, 0
	}

	wait := time.Second
	if s.rps > 0 {
		wait = time.Duration(float64(time.Second) / float64(s.rps))
	}
	return false, wait
}

// Len returns the number of tracked keys.
func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup drops keys idle for longer than the TTL.
func (s *LimiterStore) Cleanup() {
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor runs Cleanup periodically until ctx is done.
func (s *LimiterStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}

	t := s.clock.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.Chan():
				s.Cleanup()
			}
		}
	}()
}

// RateLimitEvent describes one limiter decision
type RateLimitEvent struct {
	Key     string
	Allowed bool
	Method  string
	Path    string
	At      time.Time
}

// StatsRecorder receives limiter decisions
type StatsRecorder interface {
	Record(ctx context.Context, ev RateLimitEvent) error
}

// RedisStatsRecorder counts allowed and denied requests in Redis hashes, in a
// cumulative total and in per-minute buckets.
type RedisStatsRecorder struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisStatsRecorder creates a recorder writing under prefix.
func NewRedisStatsRecorder(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisStatsRecorder {
	if prefix == "" {
		prefix = "ratelimit:stats"
	}
	return &RedisStatsRecorder{
		rdb:    rdb,
		prefix: strings.Trim(prefix, ":"),
		ttl:    ttl,
	}
}

// Record implements StatsRecorder.
func (s *RedisStatsRecorder) Record(ctx context.Context, ev RateLimitEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	field := "denied"
	if ev.Allowed {
		field = "allowed"
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", field, 1)

	bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
	pipe.HIncrBy(ctx, bucketKey, field, 1)
	if s.ttl > 0 {
		pipe.Expire(ctx, bucketKey, s.ttl)
	}

	if ev.Method != "" {
		pipe.HIncrBy(ctx, s.prefix+":route", ev.Method+" "+ev.Path+":"+field, 1)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// RateLimitOptions configures RateLimit
type RateLimitOptions struct {
	Store     *LimiterStore
	Stats     StatsRecorder
	KeyHeader string
}

// ClientKey identifies the caller by the key header when present, otherwise
// by the remote IP.
func ClientKey(r *http.Request, keyHeader string) string {
	if keyHeader != "" {
		if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
			return v
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// RateLimit rejects requests over the per-client budget with 429 and a
// Retry-After header.
func RateLimit(opts RateLimitOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r, opts.KeyHeader)
			allowed, wait := opts.Store.Reserve(key)

			if opts.Stats != nil {
				ev := RateLimitEvent{
					Key:     key,
					Allowed: allowed,
					Method:  r.Method,
					Path:    r.URL.Path,
					At:      opts.Store.clock.Now(),
				}
				if err := opts.Stats.Record(r.Context(), ev); err != nil {
					zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to record rate limit stats")
				}
			}

			if !allowed {
				secs := int(math.Ceil(wait.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				Detail(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
