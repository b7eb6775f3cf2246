package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestSetGet_HitMiss(t *testing.T) {
	s := NewStore(2)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "miss before Set")

	require.NoError(t, s.Set(ctx, "k", []byte(`[1,2]`), time.Minute))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestTTL_Expiry(t *testing.T) {
	clk := newFakeClock()
	s := NewStore(10, WithClock(clk.Now))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", []byte("a"), 100*time.Millisecond))
	require.NoError(t, s.Set(ctx, "long", []byte("b"), time.Hour))

	clk.Advance(150 * time.Millisecond)

	_, ok, _ := s.Get(ctx, "short")
	assert.False(t, ok, "short entry expired")
	_, ok, _ = s.Get(ctx, "long")
	assert.True(t, ok, "long entry still alive")
}

func TestLRUEviction(t *testing.T) {
	s := NewStore(2)
	ctx := context.Background()

	_ = s.Set(ctx, "A", []byte("a"), 0)
	_ = s.Set(ctx, "B", []byte("b"), 0)
	// A становится «свежим»
	_, ok, _ := s.Get(ctx, "A")
	require.True(t, ok)
	_ = s.Set(ctx, "C", []byte("c"), 0)

	_, ok, _ = s.Get(ctx, "B")
	assert.False(t, ok, "B evicted")
	_, ok, _ = s.Get(ctx, "A")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestEviction_PrefersExpired(t *testing.T) {
	clk := newFakeClock()
	s := NewStore(2, WithClock(clk.Now))
	ctx := context.Background()

	_ = s.Set(ctx, "stale", []byte("x"), time.Second)
	_ = s.Set(ctx, "old", []byte("y"), time.Hour)
	_, _, _ = s.Get(ctx, "stale") // stale в голове списка

	clk.Advance(2 * time.Second)
	_ = s.Set(ctx, "new", []byte("z"), time.Hour)

	_, ok, _ := s.Get(ctx, "old")
	assert.True(t, ok, "live entry survives while an expired one can be dropped")
}

func TestUnbounded(t *testing.T) {
	s := NewStore(0)
	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		_ = s.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0)
	}
	assert.Equal(t, 1000, s.Len())
}

func TestCloneImmutability(t *testing.T) {
	s := NewStore(1)
	ctx := context.Background()
	orig := []byte("abc")
	_ = s.Set(ctx, "Z", orig, 0)
	orig[0] = 'X'

	v1, _, _ := s.Get(ctx, "Z")
	v1[1] = 'Y'

	v2, _, _ := s.Get(ctx, "Z")
	assert.Equal(t, "abc", string(v2))
}

func TestIncr_FixedWindow(t *testing.T) {
	clk := newFakeClock()
	s := NewStore(0, WithClock(clk.Now))
	ctx := context.Background()

	n, ttl, err := s.Incr(ctx, "rl", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, time.Minute, ttl)

	clk.Advance(20 * time.Second)
	n, ttl, _ = s.Incr(ctx, "rl", time.Minute)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, 40*time.Second, ttl, "window is not extended")

	clk.Advance(41 * time.Second)
	n, ttl, _ = s.Incr(ctx, "rl", time.Minute)
	assert.EqualValues(t, 1, n, "new window after reset")
	assert.Equal(t, time.Minute, ttl)
}

func TestIncr_Concurrent(t *testing.T) {
	s := NewStore(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = s.Incr(ctx, "rl", time.Minute)
		}()
	}
	wg.Wait()

	n, _, _ := s.Incr(ctx, "rl", time.Minute)
	assert.EqualValues(t, 51, n)
}

func TestName_Ping(t *testing.T) {
	s := NewStore(1)
	assert.Equal(t, "memory", s.Name())
	assert.NoError(t, s.Ping(context.Background()))
}
