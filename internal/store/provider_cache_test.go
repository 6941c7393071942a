package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-barber-api/internal/cache"
	"go-barber-api/internal/model"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLookup struct {
	provider *model.User
	err      error
	calls    int
}

func (s *stubLookup) GetUserByID(context.Context, int) (*model.User, error) {
	return &model.User{ID: 1, Name: "user"}, nil
}

func (s *stubLookup) GetProviderByID(context.Context, int) (*model.User, error) {
	s.calls++
	return s.provider, s.err
}

func TestCachedUsersGetProviderByID(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips database", func(t *testing.T) {
		raw, _ := json.Marshal(model.User{ID: 4, Name: "Cached", Provider: true})
		lookup := &stubLookup{}
		c := CachedUsers{
			ProviderLookup: lookup,
			Cache: &cache.FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "provider:4", key)
				return redis.NewStringResult(string(raw), nil)
			}},
			Logger: zap.NewNop(),
		}
		u, err := c.GetProviderByID(ctx, 4)
		require.NoError(t, err)
		require.Equal(t, "Cached", u.Name)
		require.Zero(t, lookup.calls)
	})

	t.Run("cache miss stores result", func(t *testing.T) {
		lookup := &stubLookup{provider: &model.User{ID: 4, Name: "DB", Provider: true}}
		var stored []byte
		var ttl time.Duration
		c := CachedUsers{
			ProviderLookup: lookup,
			Cache: &cache.FakeCache{
				GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", redis.Nil) },
				SetFn: func(_ context.Context, _ string, v any, exp time.Duration) *redis.StatusCmd {
					stored = v.([]byte)
					ttl = exp
					return redis.NewStatusResult("OK", nil)
				},
			},
			TTL:    time.Minute,
			Logger: zap.NewNop(),
		}
		u, err := c.GetProviderByID(ctx, 4)
		require.NoError(t, err)
		require.Equal(t, "DB", u.Name)
		require.Equal(t, 1, lookup.calls)
		require.Equal(t, time.Minute, ttl)
		require.Contains(t, string(stored), `"name":"DB"`)
	})

	t.Run("absent provider is not cached", func(t *testing.T) {
		lookup := &stubLookup{}
		c := CachedUsers{
			ProviderLookup: lookup,
			Cache: &cache.FakeCache{
				GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", redis.Nil) },
			},
			Logger: zap.NewNop(),
		}
		u, err := c.GetProviderByID(ctx, 4)
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("cache errors fall back to database", func(t *testing.T) {
		lookup := &stubLookup{provider: &model.User{ID: 4, Provider: true}}
		c := CachedUsers{
			ProviderLookup: lookup,
			Cache: &cache.FakeCache{
				GetFn: func(context.Context, string) *redis.StringCmd {
					return redis.NewStringResult("", errors.New("redis down"))
				},
				SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
					return redis.NewStatusResult("", errors.New("redis down"))
				},
			},
			Logger: zap.NewNop(),
		}
		u, err := c.GetProviderByID(ctx, 4)
		require.NoError(t, err)
		require.Equal(t, 4, u.ID)
	})

	t.Run("malformed entry is refreshed", func(t *testing.T) {
		lookup := &stubLookup{provider: &model.User{ID: 4, Provider: true}}
		setCalled := false
		c := CachedUsers{
			ProviderLookup: lookup,
			Cache: &cache.FakeCache{
				GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("{", nil) },
				SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
					setCalled = true
					return redis.NewStatusResult("OK", nil)
				},
			},
			Logger: zap.NewNop(),
		}
		_, err := c.GetProviderByID(ctx, 4)
		require.NoError(t, err)
		require.Equal(t, 1, lookup.calls)
		require.True(t, setCalled)
	})

	t.Run("database error", func(t *testing.T) {
		c := CachedUsers{
			ProviderLookup: &stubLookup{err: errors.New("db")},
			Cache: &cache.FakeCache{
				GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", redis.Nil) },
			},
			Logger: zap.NewNop(),
		}
		_, err := c.GetProviderByID(ctx, 4)
		require.Error(t, err)
	})
}

func TestForgetProvider(t *testing.T) {
	var deleted []string
	c := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
		deleted = append(deleted, keys...)
		return redis.NewIntResult(1, nil)
	}}
	require.NoError(t, ForgetProvider(context.Background(), c, 4))
	require.Equal(t, []string{"provider:4"}, deleted)

	c.DelFn = func(context.Context, ...string) *redis.IntCmd { return redis.NewIntResult(0, errors.New("down")) }
	require.Error(t, ForgetProvider(context.Background(), c, 4))
}
