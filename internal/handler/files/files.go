package files

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go-barber-api/internal/api"
	"go-barber-api/internal/cache"
	"go-barber-api/internal/database"
	"go-barber-api/internal/middleware"
	"go-barber-api/internal/model"
	"go-barber-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MaxFileSize 頭像大小上限
const MaxFileSize = 5 << 20

// Uploader 物件儲存，由 *storage.Uploader 實作
type Uploader interface {
	Upload(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error)
}

var (
	createFile     = store.CreateFile
	setUserAvatar  = store.SetUserAvatar
	forgetProvider = store.ForgetProvider
)

// @Summary     Upload avatar
// @Description 上傳圖片並設為目前使用者的頭像
// @Tags        files
// @Accept      mpfd
// @Produce     json
// @Param       file formData file     true "圖片檔"
// @Success     201  {object} api.FileResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /files [post]
func UploadFileHandler(db database.DB, cch cache.Cache, uploader Uploader, filesURL string, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token invalid"})
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "File not provided"})
		}
		if fh.Size > MaxFileSize {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "File too large"})
		}
		contentType := fh.Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(contentType, "image/") {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Only images are allowed"})
		}

		src, err := fh.Open()
		if err != nil {
			log.Error("open upload failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		defer src.Close()

		ctx := c.Request().Context()
		path, err := uploader.Upload(ctx, fh.Filename, src, fh.Size, contentType)
		if err != nil {
			log.Error("store upload failed", zap.Int("user_id", userID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		f, err := createFile(ctx, db, &model.File{Name: fh.Filename, Path: path})
		if err != nil {
			log.Error("create file failed", zap.String("path", path), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		if err := setUserAvatar(ctx, db, userID, f.ID); err != nil {
			log.Error("set avatar failed", zap.Int("user_id", userID), zap.Int("file_id", f.ID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		// 頭像已寫入，快取清除失敗只記錄
		if err := forgetProvider(ctx, cch, userID); err != nil {
			log.Warn("provider cache invalidation failed", zap.Int("user_id", userID), zap.Error(err))
		}
		return c.JSON(http.StatusCreated, api.NewFileResponse(f, filesURL))
	}
}
