package sessions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-barber-api/internal/database"
	"go-barber-api/internal/model"
	"go-barber-api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// helper to build echo context
func newSessionCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type fakeRow struct {
	u   model.User
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.u.ID
	*dest[1].(*string) = r.u.Name
	*dest[2].(*string) = r.u.Email
	*dest[3].(*string) = r.u.PasswordHash
	*dest[4].(*bool) = r.u.Provider
	*dest[5].(**int) = r.u.AvatarID
	*dest[6].(*time.Time) = r.u.CreatedAt
	*dest[7].(*time.Time) = r.u.UpdatedAt
	return nil
}

func rowDB(row fakeRow) *database.FakeDB {
	return &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row { return row }}
}

func TestCreateSessionHandler(t *testing.T) {
	body := `{"email":"Ana@Example.com","password":"b"}`

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newSessionCtx(e, "")
	require.NoError(t, CreateSessionHandler(&database.FakeDB{}, time.Hour)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newSessionCtx(e, body)
	require.NoError(t, CreateSessionHandler(&database.FakeDB{}, time.Hour)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// database error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newSessionCtx(e, body)
	require.NoError(t, CreateSessionHandler(rowDB(fakeRow{err: errors.New("conn")}), time.Hour)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// user not found
	ctx, rec = newSessionCtx(e, body)
	require.NoError(t, CreateSessionHandler(rowDB(fakeRow{err: pgx.ErrNoRows}), time.Hour)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	// wrong password
	badHash, _ := service.HashPassword("other")
	ctx, rec = newSessionCtx(e, body)
	require.NoError(t, CreateSessionHandler(rowDB(fakeRow{u: model.User{ID: 1, PasswordHash: badHash}}), time.Hour)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// issue token error (JWT_SECRET not set)
	t.Setenv("JWT_SECRET", "")
	goodHash, _ := service.HashPassword("b")
	ctx, rec = newSessionCtx(e, body)
	require.NoError(t, CreateSessionHandler(rowDB(fakeRow{u: model.User{ID: 1, PasswordHash: goodHash}}), time.Hour)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	t.Setenv("JWT_SECRET", "s")
	var gotEmail any
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		gotEmail = args[0]
		return fakeRow{u: model.User{ID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: goodHash}}
	}}
	ctx, rec = newSessionCtx(e, body)
	require.NoError(t, CreateSessionHandler(db, time.Hour)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ana@example.com", gotEmail)
	require.Contains(t, rec.Body.String(), `"token"`)
	require.Contains(t, rec.Body.String(), `"name":"Ana"`)
}
