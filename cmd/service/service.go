// @title        GoBarber API
// @version      1.0
// @description  GoBarber 預約服務的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-barber-api/internal/cache"
	"go-barber-api/internal/config"
	"go-barber-api/internal/database"
	"go-barber-api/internal/handler/files"
	"go-barber-api/internal/locale"
	"go-barber-api/internal/logger"
	"go-barber-api/internal/mail"
	"go-barber-api/internal/middleware"
	"go-barber-api/internal/router"
	"go-barber-api/internal/service"
	"go-barber-api/internal/storage"
	"go-barber-api/internal/store"
	"go-barber-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "go-barber-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// JSONSerializer 以 goccy/go-json 取代 encoding/json
type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v", typeErr.Type, typeErr.Value, typeErr.Field, typeErr.Offset)).SetInternal(err)
	case errors.As(err, &syntaxErr):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Syntax error: offset=%v, error=%v", syntaxErr.Offset, syntaxErr.Error())).SetInternal(err)
	}
	return err
}

const (
	mailQueueSize    = 100
	mailTimeout      = 30 * time.Second
	providerCacheTTL = 10 * time.Minute
	shutdownTimeout  = 10 * time.Second
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	newMongoClient  = database.NewMongoClient
	runMigrationsFn = database.RunMigrations
	newMailer       = func(cfg mail.SMTPConfig, locale string) (mail.Mailer, error) { return mail.NewSMTPMailer(cfg, locale) }
	newWorkerPool   = worker.NewQueuedPool
	newUploader     = func(ctx context.Context, cfg *config.Config) (files.Uploader, error) {
		return storage.NewMinioUploader(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	}
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifySignals   = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
	exitFunc = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zl, err := newLogger(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	lc, err := locale.New(cfg.Locale, loc)
	if err != nil {
		return fmt.Errorf("無效的 APP_LOCALE: %v", err)
	}

	ctx := context.Background()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	mongoClient, err := newMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		return fmt.Errorf("MongoDB 連線失敗: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	smtp, err := newMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
	}, cfg.Locale)
	if err != nil {
		return fmt.Errorf("Mailer 建立失敗: %v", err)
	}

	// 關閉時先送完佇列中的信件
	wp := newWorkerPool(cfg.MailWorkers, mailQueueSize)
	defer wp.Stop()

	appointments := &service.AppointmentService{
		Appointments: store.Appointments{DB: db},
		Users: store.CachedUsers{
			ProviderLookup: store.Users{DB: db},
			Cache:          rdb,
			TTL:            providerCacheTTL,
			Logger:         zl,
		},
		Notifications: store.NewNotifications(mongoClient.Database(cfg.MongoDB)),
		Mailer:        mail.AsyncMailer{Mailer: smtp, Pool: wp, Logger: zl, Timeout: mailTimeout},
		Locale:        lc,
		Location:      loc,
		Logger:        zl,
		Now:           time.Now,
	}

	var uploader files.Uploader
	if cfg.MinioEndpoint != "" {
		if uploader, err = newUploader(ctx, cfg); err != nil {
			return fmt.Errorf("MinIO 連線失敗: %v", err)
		}
	}

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rl.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.JSONSerializer = JSONSerializer{}
	e.Debug = cfg.AppEnv == "development"
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zl))
	e.Use(echomw.Recover())

	router.Setup(e, router.Deps{
		DB:           db,
		Cache:        rdb,
		Appointments: appointments,
		Logger:       zl,
		Location:     loc,
		FilesURL:     cfg.FilesURL,
		TokenTTL:     cfg.JWTTTL,
		RateLimiter:  rl,
		Uploader:     uploader,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sigCtx, stop := notifySignals()
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, ":"+cfg.Port) }()
	zl.Info("server started", zap.String("port", cfg.Port))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-sigCtx.Done():
		zl.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return shutdownServer(shutdownCtx, e)
	}
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
