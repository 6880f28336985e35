package ratelimit

import (
	"context"
	"sync"
	"time"
)

// clientWindow counts one caller's requests in the current window
type clientWindow struct {
	mu       sync.Mutex
	start    time.Time
	count    int
	lastSeen time.Time
}

// MemoryLimiter is a per-key fixed window allowing limit requests per window.
// State lives in this process only.
type MemoryLimiter struct {
	limit   int
	window  time.Duration
	idleTTL time.Duration
	clients sync.Map
	now     func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		idleTTL: 2 * window,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := m.now()

	v, ok := m.clients.Load(key)
	if !ok {
		v, _ = m.clients.LoadOrStore(key, &clientWindow{})
	}
	cw := v.(*clientWindow)

	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.lastSeen = now

	if cw.start.IsZero() || now.Sub(cw.start) >= m.window {
		cw.start = now
		cw.count = 0
	}

	reset := cw.start.Add(m.window).Sub(now)
	res := Result{Limit: m.limit, ResetAfter: reset}
	if cw.count >= m.limit {
		res.RetryAfter = reset
		return res, nil
	}

	cw.count++
	res.Allowed = true
	res.Remaining = m.limit - cw.count
	return res, nil
}

// StartCleanup evicts idle callers every interval until Stop is called
func (m *MemoryLimiter) StartCleanup(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.evictIdle(m.now())
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop ends the cleanup goroutine; safe to call more than once
func (m *MemoryLimiter) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// evictIdle drops callers not seen within idleTTL; their window has already expired
func (m *MemoryLimiter) evictIdle(now time.Time) int {
	evicted := 0
	m.clients.Range(func(key, value any) bool {
		cw := value.(*clientWindow)
		cw.mu.Lock()
		idle := now.Sub(cw.lastSeen) > m.idleTTL
		cw.mu.Unlock()
		if idle {
			m.clients.Delete(key)
			evicted++
		}
		return true
	})
	return evicted
}
