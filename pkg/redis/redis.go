package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

type Redis struct {
	Client *redis.Client
}

// New connects and pings once; an unreachable server is an error.
func New(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: connectTimeout,
	})

	r := &Redis{Client: client}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := r.Ping(ctx); err != nil {
		r.Close()

		return nil, err
	}

	return r, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		r.Client.Close()
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
