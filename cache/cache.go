package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// historyKey is the single Redis key the serialized history lives under.
const historyKey = "price_comparison_history"

// HistoryBlob stores the serialized price history under one Redis key.
type HistoryBlob struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection before returning
// the blob.
func New(addr, password string, db int) (*HistoryBlob, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &HistoryBlob{client: client}, nil
}

// Read returns the stored payload, or (nil, nil) when the key is unset.
func (b *HistoryBlob) Read(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, historyKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the payload wholesale. No TTL: retention is enforced
// by the store itself, date by date.
func (b *HistoryBlob) Write(ctx context.Context, data []byte) error {
	return b.client.Set(ctx, historyKey, data, 0).Err()
}

// Close closes the underlying Redis connection.
func (b *HistoryBlob) Close() error {
	return b.client.Close()
}
