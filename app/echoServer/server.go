package echoServer

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/validation"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// New builds the echo instance with middlewares, health, swagger and the
// /v1 routes registered.
func New(log *slog.Logger, c C) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = Serializer{}
	e.Validator = validation.New(nil)
	RegisterMiddlewares(e, log)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	Register(e, c)
	return e
}
