package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/savioruz/culturepay/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/savioruz/culturepay/pkg/redis IRedisCache

type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type iRedisCacheImpl struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisCache(client *redis.Client, log logger.Interface) IRedisCache {
	return &iRedisCacheImpl{
		client: client,
		log:    log,
	}
}

// Clear removes every key matching the pattern.
func (i *iRedisCacheImpl) Clear(ctx context.Context, pattern string) (err error) {
	iter := i.client.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		if err = i.client.Del(ctx, iter.Val()).Err(); err != nil {
			i.log.Error("redis - clear - failed to delete cache: %v", err)

			return err
		}
	}

	return iter.Err()
}

// Delete implements IRedisCache.
func (i *iRedisCacheImpl) Delete(ctx context.Context, key string) error {
	err := i.client.Del(ctx, key).Err()
	if err != nil {
		i.log.Error("redis - delete - failed to delete cache: %v", err)

		return err
	}

	return nil
}

// Get implements IRedisCache. A missing key returns redis.Nil.
func (i *iRedisCacheImpl) Get(ctx context.Context, key string, value any) (err error) {
	cacheValue, err := i.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	default:
		if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
			i.log.Error("redis - get - failed to unmarshal value: %v", err)

			return err
		}
	}

	return nil
}

// Save implements IRedisCache.
func (i *iRedisCacheImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue []byte

	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)
		if err != nil {
			i.log.Error("redis - save - failed to marshal value: %v", err)

			return err
		}
	}

	err = i.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		i.log.Error("redis - save - failed to save value: %v", err)

		return err
	}

	i.log.Debug("redis - save - saved value: %s", key)

	return nil
}

type nopCache struct{}

// NewNopCache returns a cache that stores nothing. Every Get is a miss.
func NewNopCache() IRedisCache {
	return nopCache{}
}

func (nopCache) Save(context.Context, string, any, int) error { return nil }

func (nopCache) Get(context.Context, string, any) error { return redis.Nil }

func (nopCache) Delete(context.Context, string) error { return nil }

func (nopCache) Clear(context.Context, string) error { return nil }
