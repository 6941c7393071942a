package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-barber-api/internal/api"
	"go-barber-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var (
	errTokenMissing = errors.New("Token not provided")
	errTokenInvalid = errors.New("Token invalid")
)

var verifyAccessToken = service.VerifyAccessToken

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errTokenMissing
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errTokenInvalid
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, errTokenInvalid
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer JWT，通過後將 claims 存入 context
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// UserID 取出 RequireAuth 存入的使用者 ID，未登入時回傳 false
func UserID(c echo.Context) (int, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}
