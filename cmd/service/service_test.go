package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go-barber-api/internal/cache"
	"go-barber-api/internal/config"
	"go-barber-api/internal/database"
	"go-barber-api/internal/handler/files"
	"go-barber-api/internal/logger"
	"go-barber-api/internal/mail"
	"go-barber-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var origNewUploader = newUploader

type nopUploader struct{}

func (nopUploader) Upload(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", nil
}

func restoreGlobals() {
	loadConfig = config.Load
	newLogger = logger.New
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	newMongoClient = database.NewMongoClient
	runMigrationsFn = database.RunMigrations
	newMailer = func(cfg mail.SMTPConfig, locale string) (mail.Mailer, error) { return mail.NewSMTPMailer(cfg, locale) }
	newWorkerPool = worker.NewQueuedPool
	newUploader = origNewUploader
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc = os.Exit
}

type fakeMongo struct {
	client       *mongo.Client
	disconnected bool
}

func (f *fakeMongo) Database(name string, opts ...*options.DatabaseOptions) *mongo.Database {
	return f.client.Database(name, opts...)
}

func (f *fakeMongo) Disconnect(context.Context) error {
	f.disconnected = true
	return nil
}

// 建立不會實際連線的 client，僅供取得 *mongo.Database
func newFakeMongo(t *testing.T) *fakeMongo {
	t.Helper()
	c, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Disconnect(context.Background()) })
	return &fakeMongo{client: c}
}

type nopMailer struct{}

func (nopMailer) SendCancellation(context.Context, mail.CancellationMail) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		AppEnv:         "production",
		LogLevel:       "info",
		DatabaseURL:    "db",
		RedisAddr:      "127",
		RedisPassword:  "pw",
		RedisDB:        1,
		MongoURL:       "mongodb://m",
		MongoDB:        "gobarber",
		JWTSecret:      "s",
		JWTTTL:         time.Hour,
		SMTPHost:       "smtp",
		SMTPPort:       1025,
		MailWorkers:    2,
		Locale:         "pt_BR",
		Timezone:       "UTC",
		RateLimitRPS:   10,
		RateLimitBurst: 10,
	}
}

// stubAll 將所有外部依賴換成假物件，回傳呼叫紀錄
func stubAll(t *testing.T) map[string]bool {
	t.Helper()
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	fm := newFakeMongo(t)

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newLogger = func(string, string) (*zap.Logger, error) { return zap.NewNop(), nil }
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(_ context.Context, addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	newMongoClient = func(ctx context.Context, url string) (database.MongoClient, error) {
		called["mongo"] = true
		return fm, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	newMailer = func(cfg mail.SMTPConfig, locale string) (mail.Mailer, error) {
		called["mailer"] = true
		require.Equal(t, "smtp", cfg.Host)
		require.Equal(t, 1025, cfg.Port)
		return nopMailer{}, nil
	}
	newWorkerPool = func(n, queue int) worker.Pool {
		called["pool"] = true
		require.Equal(t, 2, n)
		return worker.NewQueuedPool(n, queue)
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}
	t.Cleanup(func() {
		if called["mongo"] {
			require.True(t, fm.disconnected)
		}
	})
	return called
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestJSONSerializer(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.JSON(http.StatusOK, map[string]int{"id": 1}))
	require.JSONEq(t, `{"id":1}`, rec.Body.String())

	var v struct {
		ID int `json:"id"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":7}`))
	c = e.NewContext(req, httptest.NewRecorder())
	require.NoError(t, JSONSerializer{}.Deserialize(c, &v))
	require.Equal(t, 7, v.ID)

	for _, body := range []string{`{"id":"x"}`, `{"id":`} {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c = e.NewContext(req, httptest.NewRecorder())
		err := JSONSerializer{}.Deserialize(c, &v)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, body)
		require.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestRunSuccess(t *testing.T) {
	called := stubAll(t)

	require.NoError(t, run())
	for _, k := range []string{"pgx", "redis", "mongo", "migrate", "mailer", "pool", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
}

func TestRunWithObjectStorage(t *testing.T) {
	called := stubAll(t)
	loadConfig = func() (*config.Config, error) {
		cfg := testConfig()
		cfg.MinioEndpoint = "localhost:9000"
		cfg.MinioBucket = "avatars"
		return cfg, nil
	}
	var routes []*echo.Route
	newUploader = func(_ context.Context, cfg *config.Config) (files.Uploader, error) {
		called["minio"] = true
		require.Equal(t, "avatars", cfg.MinioBucket)
		return nopUploader{}, nil
	}
	startServer = func(e *echo.Echo, _ string) error {
		routes = e.Routes()
		return nil
	}
	require.NoError(t, run())
	require.True(t, called["minio"])

	found := false
	for _, r := range routes {
		if r.Method == http.MethodPost && r.Path == "/api/files" {
			found = true
		}
	}
	require.True(t, found)

	newUploader = func(context.Context, *config.Config) (files.Uploader, error) { return nil, errors.New("minio") }
	require.ErrorContains(t, run(), "MinIO")
}

func TestRunGracefulShutdown(t *testing.T) {
	called := stubAll(t)
	sigCtx, cancelSig := context.WithCancel(context.Background())
	origNotify := notifySignals
	t.Cleanup(func() { notifySignals = origNotify })
	notifySignals = func() (context.Context, context.CancelFunc) { return sigCtx, cancelSig }

	block := make(chan struct{})
	startServer = func(*echo.Echo, string) error { <-block; return http.ErrServerClosed }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error {
		called["shutdown"] = true
		_, ok := ctx.Deadline()
		require.True(t, ok)
		close(block)
		return nil
	}

	cancelSig()
	require.NoError(t, run())
	require.True(t, called["shutdown"])
}

func TestRunErrors(t *testing.T) {
	stubAll(t)

	loadConfig = func() (*config.Config, error) { return nil, errors.New("config") }
	require.EqualError(t, run(), "config")

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newLogger = func(string, string) (*zap.Logger, error) { return nil, errors.New("logger") }
	require.Error(t, run())

	newLogger = func(string, string) (*zap.Logger, error) { return zap.NewNop(), nil }
	loadConfig = func() (*config.Config, error) {
		cfg := testConfig()
		cfg.Timezone = "Nowhere/Land"
		return cfg, nil
	}
	require.Error(t, run())

	loadConfig = func() (*config.Config, error) {
		cfg := testConfig()
		cfg.Locale = "xx"
		return cfg, nil
	}
	require.ErrorContains(t, run(), "APP_LOCALE")

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.ErrorContains(t, run(), "DB")

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{CloseFn: func() {}}, nil }
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.ErrorContains(t, run(), "Redis")

	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		return &cache.FakeCache{CloseFn: func() error { return nil }}, nil
	}
	newMongoClient = func(context.Context, string) (database.MongoClient, error) { return nil, errors.New("mongo") }
	require.ErrorContains(t, run(), "MongoDB")

	fm := newFakeMongo(t)
	newMongoClient = func(context.Context, string) (database.MongoClient, error) { return fm, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.ErrorContains(t, run(), "Migration")

	runMigrationsFn = func(string) error { return nil }
	newMailer = func(mail.SMTPConfig, string) (mail.Mailer, error) { return nil, errors.New("tmpl") }
	require.ErrorContains(t, run(), "Mailer")

	newMailer = func(mail.SMTPConfig, string) (mail.Mailer, error) { return nopMailer{}, nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.EqualError(t, run(), "start")
}

func TestMainExit(t *testing.T) {
	stubAll(t)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func() (*config.Config, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)

	exitCode = 0
	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	main()
	require.Equal(t, 0, exitCode)
}
