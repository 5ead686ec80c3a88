package echoServer

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// strictJSON rejects request bodies carrying fields the target struct
// does not declare.
var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

type Serializer struct{}

func (Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := strictJSON.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (Serializer) Deserialize(c echo.Context, i interface{}) error {
	if err := strictJSON.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}
