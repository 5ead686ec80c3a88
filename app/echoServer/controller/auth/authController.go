package auth

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/controller"
	authsvc "library/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login
// @Summary      Login
// @Description  Login with username + password, returns JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/auth/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return controller.Invalid(c, err)
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return controller.Invalid(c, err)
	}

	u, token, err := ct.Svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return controller.Fail(c, ct.Log, "login", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "login success",
		"token":   token,
		"user":    u,
	})
}
