package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-barber-api/internal/model"
	"go-barber-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx)
	require.ErrorIs(t, err, errTokenMissing)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx)
	require.ErrorIs(t, err, errTokenInvalid)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx)
	require.ErrorIs(t, err, errTokenInvalid)

	// valid token
	tok, err := service.IssueAccessToken(model.User{ID: 1, Provider: true}, time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.True(t, claims.Provider)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	tok, err := service.IssueAccessToken(model.User{ID: 2}, time.Minute)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(func(c echo.Context) error {
		called = true
		id, ok := UserID(c)
		require.True(t, ok)
		require.Equal(t, 2, id)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, rec = newContext("")
	called = false
	require.NoError(t, RequireAuth(func(echo.Context) error { called = true; return nil })(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Token not provided"}`, rec.Body.String())

	// other secret
	ctx, rec = newContext("Bearer " + tok)
	t.Setenv("JWT_SECRET", "rotated")
	require.NoError(t, RequireAuth(func(echo.Context) error { called = true; return nil })(ctx))
	require.False(t, called)
	require.JSONEq(t, `{"error":"Token invalid"}`, rec.Body.String())
}

func TestUserIDWithoutClaims(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := UserID(ctx)
	require.False(t, ok)

	ctx.Set(ContextUserKey, &service.CustomClaims{})
	_, ok = UserID(ctx)
	require.False(t, ok)
}
