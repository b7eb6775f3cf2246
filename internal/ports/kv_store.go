package ports

import (
	"context"
	"time"
)

// KVStore — хранилище ключ-значение с TTL, общее для кэша ответов и счётчиков лимитов.
// Требования к реализации: потокобезопасность; атомарный Incr; истёкшие ключи не возвращаются.
type KVStore interface {
	// Get — вернуть значение; (value, true, nil) при попадании, (nil, false, nil) при промахе/истечении.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set — сохранить значение с временем жизни ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Incr — увеличить счётчик окна; окно длиной window открывается первым инкрементом.
	// Возвращает текущее значение и остаток времени до сброса окна.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)

	// Ping — проверка доступности хранилища.
	Ping(ctx context.Context) error

	// Name — имя бэкенда для метрик и диагностики (memory|redis).
	Name() string
}
