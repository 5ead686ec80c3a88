// Package jwtx reads the identity echo-jwt stored in the request context.
package jwtx

import (
	"errors"

	jwtutil "library/util/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKey is where echo-jwt puts the parsed *jwt.Token.
const ContextKey = "user"

func UserIDFromContext(c echo.Context) (int64, error) {
	tok, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok || tok == nil {
		return 0, errors.New("no jwt token in context")
	}
	return jwtutil.Subject(tok)
}
