package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
)

const (
	backendName = "memory"
	// sweepEvery — раз в сколько записей проходить весь список в поисках истёкших ключей.
	sweepEvery = 256
)

var _ ports.KVStore = (*Store)(nil)

type entry struct {
	key       string
	value     []byte
	counter   int64
	expiresAt time.Time // нулевое значение — бессрочно
}

// Store — LRU-хранилище с TTL на каждую запись. Служит кэшем ответов и
// счётчиками окон лимитера, когда Redis не настроен.
type Store struct {
	capacity int // <= 0 — без ограничения
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element
	puts  int

	mu sync.Mutex
}

// Option — настройка Store.
type Option func(*Store)

// WithClock — подмена источника времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore — хранилище на capacity записей; capacity <= 0 отключает вытеснение.
func NewStore(capacity int, opts ...Option) *Store {
	s := &Store{
		capacity: capacity,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Name() string { return backendName }

func (s *Store) Ping(context.Context) error { return nil }

// Get — копия значения; истёкшая запись удаляется и считается промахом.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		metrics.KVStoreOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, false, nil
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		s.removeElement(elem)
		metrics.KVStoreOps.WithLabelValues(backendName, "get", "expired").Inc()
		return nil, false, nil
	}
	s.ll.MoveToFront(elem)

	metrics.KVStoreOps.WithLabelValues(backendName, "get", "hit").Inc()
	return cloneBytes(ent.value), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent := s.upsert(key, now)
	ent.value = cloneBytes(value)
	ent.counter = 0
	ent.expiresAt = expiryFrom(now, ttl)

	metrics.KVStoreOps.WithLabelValues(backendName, "set", "ok").Inc()
	return nil
}

// Incr — фиксированное окно: первый инкремент открывает окно длиной window,
// последующие не продлевают его.
func (s *Store) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[key]; ok {
		ent := elem.Value.(*entry)
		if !isExpired(ent, now) {
			ent.counter++
			s.ll.MoveToFront(elem)
			metrics.KVStoreOps.WithLabelValues(backendName, "incr", "ok").Inc()
			return ent.counter, remaining(ent, now), nil
		}
	}

	ent := s.upsert(key, now)
	ent.value = nil
	ent.counter = 1
	ent.expiresAt = expiryFrom(now, window)

	metrics.KVStoreOps.WithLabelValues(backendName, "incr", "ok").Inc()
	return ent.counter, remaining(ent, now), nil
}

// Len — количество записей, включая ещё не вычищенные истёкшие.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

// upsert — существующая запись (поднятая в голову) или новая. Вызывать под mu.
func (s *Store) upsert(key string, now time.Time) *entry {
	if elem, ok := s.index[key]; ok {
		s.ll.MoveToFront(elem)
		return elem.Value.(*entry)
	}

	s.puts++
	if s.puts%sweepEvery == 0 {
		s.sweepExpired(now)
	}

	ent := &entry{key: key}
	s.index[key] = s.ll.PushFront(ent)

	if s.capacity > 0 && s.ll.Len() > s.capacity {
		s.sweepExpired(now)
		for s.ll.Len() > s.capacity {
			s.evictLRU()
		}
	}
	return ent
}
