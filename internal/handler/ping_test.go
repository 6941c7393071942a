package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-barber-api/internal/cache"
	"go-barber-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	cacheDown := func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("READONLY"))
	}

	cases := []struct {
		name     string
		pingErr  error
		setFn    func(context.Context, string, any, time.Duration) *redis.StatusCmd
		wantCode int
		wantBody string
	}{
		{name: "database down", pingErr: errors.New("conn refused"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"database unhealthy"}`},
		{name: "cache down", setFn: cacheDown, wantCode: http.StatusInternalServerError, wantBody: `{"error":"cache unhealthy"}`},
		{name: "healthy", wantCode: http.StatusOK, wantBody: `{"message":"pong"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := &database.FakeDB{PingFn: func(context.Context) error { return tc.pingErr }}
			cch := &cache.FakeCache{SetFn: tc.setFn}

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/ping", nil), rec)
			require.NoError(t, PingHandler(db, cch)(c))
			require.Equal(t, tc.wantCode, rec.Code)
			require.JSONEq(t, tc.wantBody, rec.Body.String())

			if tc.wantCode == http.StatusOK {
				require.Equal(t, "pong", cch.Get(context.Background(), "health:ping").Val())
			}
		})
	}
}
