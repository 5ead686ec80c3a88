package review

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/controller"
	"library/model"
	reviewsvc "library/service/review"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc reviewsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CreateReviewReq struct {
	UserID     int64       `json:"user_id" validate:"required,gt=0"`
	BookID     int64       `json:"book_id" validate:"required,gt=0"`
	Rating     int64       `json:"rating"`
	Comment    string      `json:"comment" validate:"required"`
	ReviewDate *model.Date `json:"review_date"`
}

type UpdateReviewReq struct {
	Rating     *int64      `json:"rating"`
	Comment    *string     `json:"comment" validate:"omitempty,min=1"`
	ReviewDate *model.Date `json:"review_date"`
}

// POST /v1/reviews
func (h *Controller) Create(c echo.Context) error {
	var req CreateReviewReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	rv, err := h.Svc.Create(c.Request().Context(), model.ReviewCreate{
		UserID:     req.UserID,
		BookID:     req.BookID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: req.ReviewDate,
	})
	if err != nil {
		return controller.Fail(c, h.Log, "review create", err)
	}
	return c.JSON(http.StatusCreated, rv)
}

// GET /v1/reviews
func (h *Controller) List(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.List(c.Request().Context(), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "review list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/reviews/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	rv, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "review detail", err)
	}
	return c.JSON(http.StatusOK, rv)
}

// PATCH /v1/reviews/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	var req UpdateReviewReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	rv, err := h.Svc.Update(c.Request().Context(), id, model.ReviewUpdate{
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewDate: req.ReviewDate,
	})
	if err != nil {
		return controller.Fail(c, h.Log, "review update", err)
	}
	return c.JSON(http.StatusOK, rv)
}

// DELETE /v1/reviews/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "review delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}
