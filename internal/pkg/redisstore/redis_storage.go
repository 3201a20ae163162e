package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage adapts a redis client to fiber's Storage interface so the rate
// limiter survives restarts and works across replicas.
type Storage struct {
	client *redis.Client
}

func New(addr, password string, db int) *Storage {
	return &Storage{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// NewFromURL accepts either a redis:// URL or a bare host:port address.
func NewFromURL(rawURL string) *Storage {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		opt = &redis.Options{Addr: rawURL}
	}
	return &Storage{client: redis.NewClient(opt)}
}

func (s *Storage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

func (s *Storage) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
