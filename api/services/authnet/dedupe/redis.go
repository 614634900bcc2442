// Package dedupe keeps webhook transaction claims in Redis so several server replicas
// share one idempotency record.
package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tbeaudouin05/authnet-billing/api/services/authnet/app"
)

const (
	keyPrefix = "authnet:webhook:txn:"
	// Authorize.Net retries a failed delivery for up to three days.
	DefaultTTL = 72 * time.Hour
)

// RedisClaimer implements app.TransactionClaimer with SETNX.
type RedisClaimer struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient builds a client and pings it once.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewRedisClaimer(client *redis.Client, ttl time.Duration) *RedisClaimer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisClaimer{client: client, ttl: ttl}
}

func (c *RedisClaimer) Claim(ctx context.Context, transactionID string) (bool, error) {
	set, err := c.client.SetNX(ctx, keyPrefix+transactionID, "1", c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return set, nil
}

func (c *RedisClaimer) Release(ctx context.Context, transactionID string) error {
	if err := c.client.Del(ctx, keyPrefix+transactionID).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

var _ app.TransactionClaimer = (*RedisClaimer)(nil)
