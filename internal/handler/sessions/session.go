// File: internal/handler/sessions/session.go
package sessions

import (
	"net/http"
	"strings"
	"time"

	"go-barber-api/internal/api"
	"go-barber-api/internal/database"
	"go-barber-api/internal/service"
	"go-barber-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// CreateSessionHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳使用者資料與存取令牌
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       body body     api.SessionRequest true "登入資料"
// @Success     200  {object} api.SessionResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /sessions [post]
func CreateSessionHandler(db database.DB, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SessionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}

		// 撈使用者資料
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: service.ErrInvalidCredentials.Error()})
		}

		// 驗證密碼
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: service.ErrInvalidCredentials.Error()})
		}

		// 發行存取令牌
		token, err := issueAccessToken(*user, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		return c.JSON(http.StatusOK, api.SessionResponse{
			User:  api.NewUserResponse(user),
			Token: token,
		})
	}
}
