package jwtx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "library/util/jwt"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestUserIDFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := UserIDFromContext(c)
	require.Error(t, err)

	raw, err := jwtutil.Issue("k", 77, time.Hour)
	require.NoError(t, err)
	tok, err := jwtutil.Parse(raw, "k")
	require.NoError(t, err)

	c.Set(ContextKey, tok)
	uid, err := UserIDFromContext(c)
	require.NoError(t, err)
	require.Equal(t, int64(77), uid)
}
