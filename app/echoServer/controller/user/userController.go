package user

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/controller"
	"library/app/echoServer/jwtx"
	usersvc "library/service/user"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Register a new user
// @Summary      Register user
// @Description  Register a new user with email/username uniqueness and validation
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  RegisterReq  true  "Register payload"
// @Success      201  {object}  model.User
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email/username already taken"
// @Failure      500  {object}  map[string]any "internal server error"
// @Router       /v1/users [post]
func (h *Controller) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}

	u, err := h.Svc.Create(c.Request().Context(), usersvc.CreateInput{
		Username: req.Username,
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return controller.Fail(c, h.Log, "register", err)
	}
	return c.JSON(http.StatusCreated, u)
}

// GET /v1/users/me
func (h *Controller) Me(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	u, err := h.Svc.Get(c.Request().Context(), uid)
	if err != nil {
		return controller.Fail(c, h.Log, "user me", err)
	}
	return c.JSON(http.StatusOK, u)
}

// GET /v1/users
func (h *Controller) List(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.List(c.Request().Context(), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "user list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/users/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	u, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "user detail", err)
	}
	return c.JSON(http.StatusOK, u)
}

// PATCH /v1/users/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	var req UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	u, err := h.Svc.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return controller.Fail(c, h.Log, "user update", err)
	}
	return c.JSON(http.StatusOK, u)
}

// UpdatePassword
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Param        id       path  int                true  "User ID"
// @Param        payload  body  UpdatePasswordReq  true  "Passwords"
// @Success      204
// @Failure      401  {object}  map[string]any "current password is incorrect"
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/users/{id}/update-password [post]
func (h *Controller) UpdatePassword(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	var req UpdatePasswordReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.Svc.UpdatePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return controller.Fail(c, h.Log, "update password", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /v1/users/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "user delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}
