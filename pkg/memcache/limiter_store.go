package mem

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// LimiterStore hands out one token-bucket limiter per client key.
type LimiterStore interface {
	// Get returns the limiter for key, creating it on first use. Each call
	// pushes the key's expiry out by the idle TTL.
	Get(key string) *rate.Limiter
	Len() int
}

type limiterStore struct {
	mu      sync.Mutex
	entries *cache.Cache
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

// NewLimiterStore allows perMinute events per key with the given burst.
// Limiters unused for idleTTL are dropped.
func NewLimiterStore(perMinute int, burst int, idleTTL time.Duration) LimiterStore {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &limiterStore{
		entries: cache.New(idleTTL, 2*idleTTL),
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		idleTTL: idleTTL,
	}
}

func (s *limiterStore) Get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries.Get(key); ok {
		limiter := v.(*rate.Limiter)
		s.entries.Set(key, limiter, s.idleTTL)
		return limiter
	}

	limiter := rate.NewLimiter(s.limit, s.burst)
	s.entries.Set(key, limiter, s.idleTTL)
	return limiter
}

func (s *limiterStore) Len() int {
	return s.entries.ItemCount()
}
