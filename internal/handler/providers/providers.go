package providers

import (
	"net/http"

	"go-barber-api/internal/api"
	"go-barber-api/internal/database"
	"go-barber-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var listProviders = store.ListProviders

// @Summary     List providers
// @Description 列出所有可預約的服務提供者與頭像
// @Tags        providers
// @Produce     json
// @Success     200 {array}  api.ProviderResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /providers [get]
func ListProvidersHandler(db database.DB, filesURL string, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listProviders(c.Request().Context(), db)
		if err != nil {
			log.Error("list providers failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		resp := make([]api.ProviderResponse, 0, len(list))
		for i := range list {
			resp = append(resp, api.NewProviderResponse(&list[i], filesURL))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
