package carlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrLockBusy возвращается, когда замок не удалось взять за отведённое время.
	// Ошибка retryable: вызывающий может повторить весь цикл quote-then-commit.
	ErrLockBusy = errors.New("carlock: lock is busy")

	// ErrRedis возвращается при ошибках взаимодействия с Redis
	ErrRedis = errors.New("carlock: redis error")
)

// Locker per-car замок на время коммита бронирования.
// Сериализует конкурирующие коммиты по одному автомобилю через Redis SetNX:
// проверка пересечений и вставка выполняются строго по очереди.
// TTL страхует от замка, зависшего после падения держателя.
type Locker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
}

// NewLocker создает новый экземпляр Locker
func NewLocker(client *redis.Client, ttl, retryInterval time.Duration) *Locker {
	return &Locker{
		client: client,
		ttl:    ttl,
		retry:  retryInterval,
	}
}

// Acquire пытается взять замок автомобиля, ожидая не дольше wait.
// Возвращает функцию освобождения замка; при таймауте — ErrLockBusy.
func (l *Locker) Acquire(ctx context.Context, carID int64, wait time.Duration) (func(), error) {
	key := lockKey(carID)
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRedis, err)
		}
		if ok {
			return func() { l.release(key) }, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrLockBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}

// release освобождает замок.
// Используем фоновый контекст: замок должен сниматься даже если
// контекст запроса уже отменён.
func (l *Locker) release(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = l.client.Del(ctx, key).Err()
}

func lockKey(carID int64) string {
	return fmt.Sprintf("lock:car:%d", carID)
}
