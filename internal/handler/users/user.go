package users

import (
	"errors"
	"net/http"
	"strings"

	"go-barber-api/internal/api"
	"go-barber-api/internal/database"
	"go-barber-api/internal/middleware"
	"go-barber-api/internal/model"
	"go-barber-api/internal/service"
	"go-barber-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
	getUserByID  = store.GetUserByID
)

// @Summary     Create a new user
// @Description 建立新帳號 (Email 會自動轉小寫)，provider 為 true 時可被預約
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: service.MsgValidationFails})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Provider:     req.Provider,
		})
		if errors.Is(err, model.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User already exists."})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token invalid"})
		}
		user, err := getUserByID(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
