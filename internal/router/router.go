// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-barber-api/internal/cache"
	"go-barber-api/internal/database"
	"go-barber-api/internal/handler"
	"go-barber-api/internal/handler/appointments"
	"go-barber-api/internal/handler/files"
	"go-barber-api/internal/handler/providers"
	"go-barber-api/internal/handler/sessions"
	"go-barber-api/internal/handler/users"
	"go-barber-api/internal/middleware"
)

// Deps 路由所需的依賴
type Deps struct {
	DB           database.DB
	Cache        cache.Cache
	Appointments appointments.Service
	Logger       *zap.Logger
	Location     *time.Location
	FilesURL     string
	TokenTTL     time.Duration
	// 為 nil 時不限流
	RateLimiter *middleware.RateLimiter
	// 未設定物件儲存時不開放上傳
	Uploader files.Uploader
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	if d.RateLimiter != nil {
		api.Use(d.RateLimiter.Middleware)
	}

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	api.POST("/users", users.CreateUserHandler(d.DB))
	api.POST("/sessions", sessions.CreateSessionHandler(d.DB, d.TokenTTL))

	// 以下需登入
	auth := middleware.RequireAuth
	api.GET("/users/me", users.GetMyUserHandler(d.DB), auth)
	api.GET("/providers", providers.ListProvidersHandler(d.DB, d.FilesURL, d.Logger), auth)
	if d.Uploader != nil {
		api.POST("/files", files.UploadFileHandler(d.DB, d.Cache, d.Uploader, d.FilesURL, d.Logger), auth)
	}

	api.GET("/appointments", appointments.ListAppointmentsHandler(d.Appointments, d.FilesURL, d.Logger), auth)
	api.POST("/appointments", appointments.CreateAppointmentHandler(d.Appointments, d.Location, d.Logger), auth)
	api.DELETE("/appointments/:id", appointments.CancelAppointmentHandler(d.Appointments, d.Logger), auth)
}
