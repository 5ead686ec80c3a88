package category

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/controller"
	"library/model"
	categorysvc "library/service/category"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc categorysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CreateCategoryReq struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
}

type UpdateCategoryReq struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

// POST /v1/categories
func (h *Controller) Create(c echo.Context) error {
	var req CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	cat, err := h.Svc.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return controller.Fail(c, h.Log, "category create", err)
	}
	return c.JSON(http.StatusCreated, cat)
}

// GET /v1/categories
func (h *Controller) List(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.List(c.Request().Context(), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "category list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/categories/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	cat, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "category detail", err)
	}
	return c.JSON(http.StatusOK, cat)
}

// PATCH /v1/categories/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	var req UpdateCategoryReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	cat, err := h.Svc.Update(c.Request().Context(), id, model.CategoryUpdate{Name: req.Name, Description: req.Description})
	if err != nil {
		return controller.Fail(c, h.Log, "category update", err)
	}
	return c.JSON(http.StatusOK, cat)
}

// DELETE /v1/categories/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "category delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}
