package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestLimiter(cfg *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.now
	return l, clock
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, Default: Rule{Limit: 10, Window: time.Minute}})

	for i := 0; i < 10; i++ {
		d := l.Allow("127.0.0.1", "GET", "/test")
		require.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 10, d.Limit)
		assert.Equal(t, 9-i, d.Remaining)
	}

	d := l.Allow("127.0.0.1", "GET", "/test")
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
}

func TestLimiter_Refill(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, Default: Rule{Limit: 60, Window: time.Minute, Burst: 2}})

	assert.True(t, l.Allow("c", "GET", "/x").Allowed)
	assert.True(t, l.Allow("c", "GET", "/x").Allowed)
	assert.False(t, l.Allow("c", "GET", "/x").Allowed)

	clock.advance(time.Second)

	assert.True(t, l.Allow("c", "GET", "/x").Allowed)
	assert.False(t, l.Allow("c", "GET", "/x").Allowed)
}

func TestLimiter_ResetTime(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, Default: Rule{Limit: 10, Window: 10 * time.Second}})

	for i := 0; i < 5; i++ {
		l.Allow("c", "GET", "/x")
	}
	d := l.Allow("c", "GET", "/x")

	assert.Equal(t, 4, d.Remaining)
	assert.Equal(t, clock.now().Add(6*time.Second), d.Reset)
}

func TestLimiter_Exempt(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled: true,
		Default: Rule{Limit: 1, Window: time.Minute},
		Exempt:  map[string]bool{"10.0.0.1": true},
	})

	for i := 0; i < 50; i++ {
		d := l.Allow("10.0.0.1", "POST", "/analyze")
		require.True(t, d.Allowed)
		assert.Equal(t, 0, d.Limit)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: false})

	for i := 0; i < 50; i++ {
		assert.True(t, l.Allow("127.0.0.1", "GET", "/test").Allowed)
	}
}

func TestLimiter_EndpointRules(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled: true,
		Default: Rule{Limit: 1000, Window: time.Minute},
		Rules: []Rule{
			{Method: "POST", Path: "/analyze", Limit: 5, Window: time.Hour},
			{Method: "GET", Path: "/health", Limit: 0},
		},
	})

	for i := 0; i < 5; i++ {
		d := l.Allow("c", "POST", "/analyze")
		require.True(t, d.Allowed)
		assert.Equal(t, 5, d.Limit)
	}
	assert.False(t, l.Allow("c", "POST", "/analyze").Allowed)

	d := l.Allow("c", "GET", "/other")
	assert.True(t, d.Allowed)
	assert.Equal(t, 1000, d.Limit)

	for i := 0; i < 2000; i++ {
		require.True(t, l.Allow("c", "GET", "/health").Allowed)
	}
}

func TestLimiter_PrefixRule(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled: true,
		Default: Rule{Limit: 1000, Window: time.Minute},
		Rules:   []Rule{{Method: "GET", Path: "/admin/", Limit: 1, Window: time.Minute}},
	})

	assert.True(t, l.Allow("c", "GET", "/admin/stats").Allowed)
	assert.False(t, l.Allow("c", "GET", "/admin/stats").Allowed)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, Default: Rule{Limit: 1, Window: time.Minute}})

	assert.True(t, l.Allow("a", "GET", "/x").Allowed)
	assert.False(t, l.Allow("a", "GET", "/x").Allowed)
	assert.True(t, l.Allow("b", "GET", "/x").Allowed)
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, Default: Rule{Limit: 100, Window: time.Minute}})

	var wg sync.WaitGroup
	var allowed atomic.Int64
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("127.0.0.1", "GET", "/test").Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowed.Load())
}

func TestLimiter_Prune(t *testing.T) {
	cfg := &Config{Enabled: true, Default: Rule{Limit: 10, Window: time.Minute}, IdleTTL: time.Hour}
	l, clock := newTestLimiter(cfg)

	for i := 0; i < 10; i++ {
		l.Allow(fmt.Sprintf("127.0.0.%d", i), "GET", "/test")
	}
	clock.advance(2 * time.Hour)
	for i := 0; i < 3; i++ {
		l.Allow(fmt.Sprintf("127.0.0.%d", i), "GET", "/test")
	}

	assert.Equal(t, 7, l.Prune())
	assert.Equal(t, 0, l.Prune())
}

func TestLimiter_RunStopsOnCancel(t *testing.T) {
	l := NewLimiter(nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)

	d := l.Allow("127.0.0.1", "GET", "/test")
	assert.True(t, d.Allowed)
	assert.Equal(t, 1000, d.Limit)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_EXEMPT", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_ANALYZE_LIMIT", "7")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.Default.Limit)
	assert.True(t, cfg.Exempt["10.0.0.2"])
	assert.Equal(t, 7, cfg.match("POST", "/analyze").Limit)
	assert.Equal(t, 7, cfg.match("POST", "/analyze/messages").Limit)
}

func TestLimiter_AnalyzeMessagesUsesAnalyzeLimit(t *testing.T) {
	l, _ := newTestLimiter(DefaultConfig())

	for i := 0; i < 10; i++ {
		d := l.Allow("127.0.0.1", "POST", "/analyze/messages")
		require.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 60, d.Limit)
	}
	assert.False(t, l.Allow("127.0.0.1", "POST", "/analyze/messages").Allowed)

	// Separate bucket from /analyze.
	assert.True(t, l.Allow("127.0.0.1", "POST", "/analyze").Allowed)
}
