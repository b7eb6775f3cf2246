//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/tg_store/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RealRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()

	client, err := NewClient(env.URL)
	require.NoError(t, err)
	defer client.Close()

	s := NewStore(client)
	require.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Set(ctx, "httpcache:/api/products?", []byte(`[]`), time.Second))
	v, ok, err := s.Get(ctx, "httpcache:/api/products?")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(v))

	for i := 1; i <= 3; i++ {
		n, ttl, err := s.Incr(ctx, "rl:/api/order:10.0.0.1", 2*time.Second)
		require.NoError(t, err)
		assert.EqualValues(t, i, n)
		assert.Positive(t, ttl)
	}

	require.Eventually(t, func() bool {
		n, _, err := s.Incr(ctx, "rl:/api/order:10.0.0.1", 2*time.Second)
		return err == nil && n == 1
	}, 10*time.Second, 500*time.Millisecond)
}
