// Package controller holds what every entity controller shares: error to
// status mapping, path/query parsing and list paging.
package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"library/repository/store"
	"library/util/apperr"

	"github.com/labstack/echo/v4"
)

// Status maps an error code to its HTTP status.
func Status(code apperr.ErrCode) int {
	switch code {
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrDuplicateKey, apperr.ErrConflict:
		return http.StatusConflict
	case apperr.ErrValidation, apperr.ErrInvalidAdjustment:
		return http.StatusBadRequest
	case apperr.ErrInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes the error response. Uncoded errors become a 500 and their
// details only reach the log.
func Fail(c echo.Context, log *slog.Logger, op string, err error) error {
	code := apperr.Code(err)
	status := Status(code)
	rid := c.Response().Header().Get(echo.HeaderXRequestID)

	if status == http.StatusInternalServerError {
		log.Error(op+" failed",
			"err", err,
			"req_id", rid,
			"path", c.Path(),
			"method", c.Request().Method,
		)
		return c.JSON(status, echo.Map{"message": "internal error"})
	}

	log.Warn(op+" rejected", "code", code, "err", err, "req_id", rid)
	return c.JSON(status, echo.Map{"message": apperr.Message(err), "code": code})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
}

// Invalid reports a bind or validator failure.
func Invalid(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json", "errors": he.Message})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
}

// ParseID reads a positive int64 path parameter.
func ParseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryInt reads an optional integer query parameter; def is returned when
// the parameter is absent.
func QueryInt(c echo.Context, name string, def int64) (int64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ListOptions reads ?limit= and ?offset=.
func ListOptions(c echo.Context) (store.ListOptions, bool) {
	limit, ok := QueryInt(c, "limit", 0)
	if !ok || limit < 0 {
		return store.ListOptions{}, false
	}
	offset, ok := QueryInt(c, "offset", 0)
	if !ok || offset < 0 {
		return store.ListOptions{}, false
	}
	return store.ListOptions{Limit: uint(limit), Offset: uint(offset)}, true
}
