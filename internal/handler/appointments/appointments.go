package appointments

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go-barber-api/internal/api"
	"go-barber-api/internal/middleware"
	"go-barber-api/internal/model"
	"go-barber-api/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Service 預約流程，由 *service.AppointmentService 實作
type Service interface {
	List(ctx context.Context, userID, page int) ([]model.Appointment, error)
	Create(ctx context.Context, in service.CreateAppointmentInput) (*model.Appointment, error)
	Cancel(ctx context.Context, appointmentID, requesterID int) (*model.Appointment, error)
}

const localLayout = "2006-01-02T15:04:05"

// parseDate 接受 RFC3339，未帶時區時以 loc 解讀
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localLayout, s, loc)
}

// @Summary     List my appointments
// @Description 列出目前使用者尚未取消的預約，依日期排序，每頁 20 筆
// @Tags        appointments
// @Produce     json
// @Param       page query    int false "頁碼 (預設 1)"
// @Success     200  {array}  api.AppointmentSummary
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /appointments [get]
func ListAppointmentsHandler(svc Service, filesURL string, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token invalid"})
		}

		page := 1
		if p := c.QueryParam("page"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid page"})
			}
			page = n
		}

		list, err := svc.List(c.Request().Context(), userID, page)
		if err != nil {
			return respondError(c, log, err, false)
		}

		resp := make([]api.AppointmentSummary, 0, len(list))
		for _, a := range list {
			resp = append(resp, api.NewAppointmentSummary(a, filesURL))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Book an appointment
// @Description 以整點為單位向服務提供者預約，成功後通知服務提供者
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateAppointmentRequest true "預約資料"
// @Success     200  {object} api.AppointmentResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /appointments [post]
func CreateAppointmentHandler(svc Service, loc *time.Location, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token invalid"})
		}

		var req api.CreateAppointmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}
		date, err := parseDate(req.Date, loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}

		a, err := svc.Create(c.Request().Context(), service.CreateAppointmentInput{
			RequesterID: userID,
			ProviderID:  req.ProviderID,
			Date:        date,
		})
		if err != nil {
			return respondError(c, log, err, false)
		}
		return c.JSON(http.StatusOK, api.NewAppointmentResponse(a))
	}
}

// @Summary     Cancel an appointment
// @Description 取消自己的預約，需在預約時間 2 小時前；成功後寄信通知服務提供者
// @Tags        appointments
// @Produce     json
// @Param       id  path     int true "預約 ID"
// @Success     200 {object} api.AppointmentResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /appointments/{id} [delete]
func CancelAppointmentHandler(svc Service, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token invalid"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment id"})
		}

		a, err := svc.Cancel(c.Request().Context(), id, userID)
		if err != nil {
			return respondError(c, log, err, true)
		}
		return c.JSON(http.StatusOK, api.NewAppointmentResponse(a))
	}
}

// respondError 將 service.Error 轉為狀態碼，其餘錯誤一律 500。
// 取消預約的規則錯誤沿用 401。
func respondError(c echo.Context, log *zap.Logger, err error, cancel bool) error {
	se := service.AsError(err)
	if se == nil {
		log.Error("appointment request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}

	status := http.StatusBadRequest
	switch se.Kind {
	case service.KindAuthorization:
		status = http.StatusUnauthorized
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindValidation:
		if cancel {
			status = http.StatusUnauthorized
		}
	}
	return c.JSON(status, api.ErrorResponse{Error: se.Message})
}
