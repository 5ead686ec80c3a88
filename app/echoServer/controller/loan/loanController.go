package loan

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/controller"
	"library/model"
	loansvc "library/service/loan"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc loansvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create opens a loan
// @Summary      Create loan
// @Description  Due date, status and fine are set by the server
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateLoanReq  true  "Loan payload"
// @Success      201  {object}  model.Loan
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "user or book not found"
// @Security     BearerAuth
// @Router       /v1/loans [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateLoanReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}

	l, err := h.Svc.Create(c.Request().Context(), model.LoanCreate{
		UserID:   req.UserID,
		BookID:   req.BookID,
		LoanDate: req.LoanDate,
	})
	if err != nil {
		return controller.Fail(c, h.Log, "loan create", err)
	}
	return c.JSON(http.StatusCreated, l)
}

// Update changes a loan's status
// @Summary      Update loan status
// @Description  Only status may be sent; any other field is rejected
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        id       path  int            true  "Loan ID"
// @Param        payload  body  UpdateLoanReq  true  "Status payload"
// @Success      200  {object}  model.Loan
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/loans/{id} [patch]
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	var req UpdateLoanReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}

	l, err := h.Svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return controller.Fail(c, h.Log, "loan update", err)
	}
	return c.JSON(http.StatusOK, l)
}

// GET /v1/loans
func (h *Controller) List(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.List(c.Request().Context(), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "loan list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/loans/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	l, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "loan detail", err)
	}
	return c.JSON(http.StatusOK, l)
}

// DELETE /v1/loans/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "loan delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}
