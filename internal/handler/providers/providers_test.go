package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-barber-api/internal/database"
	"go-barber-api/internal/model"
	"go-barber-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListProvidersHandler(t *testing.T) {
	t.Cleanup(func() { listProviders = store.ListProviders })
	e := echo.New()

	listProviders = func(context.Context, database.DB) ([]model.User, error) { return nil, errors.New("db") }
	rec := httptest.NewRecorder()
	require.NoError(t, ListProvidersHandler(nil, "", zap.NewNop())(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	listProviders = func(context.Context, database.DB) ([]model.User, error) { return nil, nil }
	rec = httptest.NewRecorder()
	require.NoError(t, ListProvidersHandler(nil, "", zap.NewNop())(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	require.JSONEq(t, `[]`, rec.Body.String())

	listProviders = func(context.Context, database.DB) ([]model.User, error) {
		return []model.User{
			{ID: 2, Name: "Diego", Email: "diego@example.com", Avatar: &model.File{ID: 4, Path: "d.png"}},
			{ID: 3, Name: "Zoe", Email: "zoe@example.com"},
		}, nil
	}
	rec = httptest.NewRecorder()
	require.NoError(t, ListProvidersHandler(nil, "http://cdn", zap.NewNop())(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[
		{"id":2,"name":"Diego","email":"diego@example.com","avatar":{"id":4,"path":"d.png","url":"http://cdn/files/d.png"}},
		{"id":3,"name":"Zoe","email":"zoe@example.com","avatar":null}
	]`, rec.Body.String())
}
