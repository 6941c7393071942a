package cache

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrMiss 快取中沒有此 key
var ErrMiss = errors.New("cache miss")

// ErrMalformed 快取內容無法解碼，呼叫端應視為未命中並覆寫
var ErrMalformed = errors.New("malformed cache entry")

// GetJSON 讀取 key 並解碼到 dst
func GetJSON(ctx context.Context, c Cache, key string, dst any) error {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrMalformed
	}
	return nil
}

// SetJSON 編碼 v 後寫入，ttl <= 0 表示不設過期
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b, ttl).Err()
}
