package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

const backendName = "redis"

var _ ports.KVStore = (*Store)(nil)

// incrScript — атомарный счётчик фиксированного окна: TTL ставится первым инкрементом
// (и восстанавливается, если ключ оказался бессрочным). Возвращает {count, pttl_ms}.
var incrScript = goredis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

// Store — KVStore поверх Redis.
type Store struct {
	client goredis.UniversalClient
}

// NewClient — клиент по строке подключения вида redis://[:password@]host:port/db.
func NewClient(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return goredis.NewClient(opts), nil
}

func NewStore(client goredis.UniversalClient) *Store {
	return &Store{client: client}
}

func (s *Store) Name() string { return backendName }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		observe("get", "miss")
		return nil, false, nil
	case err != nil:
		observe("get", "error")
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	observe("get", "hit")
	return val, true, nil
}

// Set — ttl <= 0 сохраняет ключ бессрочно.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		observe("set", "error")
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	observe("set", "ok")
	return nil
}

func (s *Store) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	windowMs := window.Milliseconds()
	if windowMs <= 0 {
		windowMs = 1
	}

	res, err := incrScript.Run(ctx, s.client, []string{key}, windowMs).Int64Slice()
	if err != nil {
		observe("incr", "error")
		return 0, 0, fmt.Errorf("redis incr %q: %w", key, err)
	}
	if len(res) != 2 {
		observe("incr", "error")
		return 0, 0, fmt.Errorf("redis incr %q: unexpected reply %v", key, res)
	}

	observe("incr", "ok")
	return res[0], time.Duration(res[1]) * time.Millisecond, nil
}

func observe(op, result string) {
	metrics.KVStoreOps.WithLabelValues(backendName, op, result).Inc()
}
