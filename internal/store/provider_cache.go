package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-barber-api/internal/cache"
	"go-barber-api/internal/model"

	"go.uber.org/zap"
)

// ProviderLookup 為 Users 與 CachedUsers 共同實作的查詢
type ProviderLookup interface {
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	GetProviderByID(ctx context.Context, id int) (*model.User, error)
}

// CachedUsers 以 Redis 快取 provider 查詢結果，只快取存在的 provider。
// 快取讀寫失敗只記錄警告，並回退到資料庫。
type CachedUsers struct {
	ProviderLookup
	Cache  cache.Cache
	TTL    time.Duration
	Logger *zap.Logger
}

func providerKey(id int) string {
	return fmt.Sprintf("provider:%d", id)
}

func (c CachedUsers) GetProviderByID(ctx context.Context, id int) (*model.User, error) {
	key := providerKey(id)

	var cached model.User
	err := cache.GetJSON(ctx, c.Cache, key, &cached)
	switch {
	case err == nil:
		return &cached, nil
	case errors.Is(err, cache.ErrMalformed):
		c.Logger.Warn("discarding malformed provider cache entry", zap.String("key", key))
	case !errors.Is(err, cache.ErrMiss):
		c.Logger.Warn("provider cache read failed", zap.String("key", key), zap.Error(err))
	}

	u, err := c.ProviderLookup.GetProviderByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}

	if err := cache.SetJSON(ctx, c.Cache, key, u, c.TTL); err != nil {
		c.Logger.Warn("provider cache write failed", zap.String("key", key), zap.Error(err))
	}
	return u, nil
}

// ForgetProvider 在使用者資料變更後清除快取
func ForgetProvider(ctx context.Context, c cache.Cache, id int) error {
	return c.Del(ctx, providerKey(id)).Err()
}
