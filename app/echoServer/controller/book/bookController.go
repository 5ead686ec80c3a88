package book

import (
	"log/slog"
	"net/http"

	"library/app/echoServer/controller"
	booksvc "library/service/book"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create adds a book to the catalog
// @Summary      Create book
// @Description  Year 1000..2024, stock > 0 (default 1), 2-letter language
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateBookReq  true  "Book payload"
// @Success      201  {object}  model.Book
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "isbn already exists"
// @Security     BearerAuth
// @Router       /v1/books [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	b, err := h.Svc.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return controller.Fail(c, h.Log, "book create", err)
	}
	return c.JSON(http.StatusCreated, b)
}

// PATCH /v1/books/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return controller.Invalid(c, err)
	}
	if err := h.V.Struct(req); err != nil {
		return controller.Invalid(c, err)
	}
	b, err := h.Svc.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return controller.Fail(c, h.Log, "book update", err)
	}
	return c.JSON(http.StatusOK, b)
}

// AdjustStock applies a signed delta to the stock
// @Summary      Adjust stock
// @Tags         books
// @Produce      json
// @Param        id        path   int  true  "Book ID"
// @Param        quantity  query  int  true  "Signed delta"
// @Success      200  {object}  model.Book
// @Failure      400  {object}  map[string]any "stock would go negative"
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "concurrent update"
// @Security     BearerAuth
// @Router       /v1/books/{id}/stock [patch]
func (h *Controller) AdjustStock(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	if c.QueryParam("quantity") == "" {
		return controller.BadRequest(c, "quantity is required")
	}
	delta, ok := controller.QueryInt(c, "quantity", 0)
	if !ok {
		return controller.BadRequest(c, "invalid quantity")
	}
	b, err := h.Svc.AdjustStock(c.Request().Context(), id, delta)
	if err != nil {
		return controller.Fail(c, h.Log, "book stock", err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /v1/books
func (h *Controller) List(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.List(c.Request().Context(), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "book list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return controller.Fail(c, h.Log, "book detail", err)
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /v1/books/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return controller.BadRequest(c, "invalid id")
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return controller.Fail(c, h.Log, "book delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /v1/books/search/?title=
func (h *Controller) SearchByTitle(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.SearchByTitle(c.Request().Context(), c.QueryParam("title"), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "book search", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/search-by-author?author_name=
func (h *Controller) SearchByAuthor(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.SearchByAuthor(c.Request().Context(), c.QueryParam("author_name"), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "book search by author", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/filter?from=&to=
func (h *Controller) FilterByYear(c echo.Context) error {
	if c.QueryParam("from") == "" || c.QueryParam("to") == "" {
		return controller.BadRequest(c, "from and to are required")
	}
	from, ok1 := controller.QueryInt(c, "from", 0)
	to, ok2 := controller.QueryInt(c, "to", 0)
	if !ok1 || !ok2 {
		return controller.BadRequest(c, "invalid year")
	}
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.FilterByYear(c.Request().Context(), from, to, opts)
	if err != nil {
		return controller.Fail(c, h.Log, "book filter", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/recent?limit=
func (h *Controller) Recent(c echo.Context) error {
	limit, ok := controller.QueryInt(c, "limit", booksvc.DefaultRecentLimit)
	if !ok || limit < 1 {
		return controller.BadRequest(c, "invalid limit")
	}
	rows, err := h.Svc.Recent(c.Request().Context(), int(limit))
	if err != nil {
		return controller.Fail(c, h.Log, "book recent", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/available
func (h *Controller) Available(c echo.Context) error {
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.Available(c.Request().Context(), opts)
	if err != nil {
		return controller.Fail(c, h.Log, "book available", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/by-category/:category_id
func (h *Controller) ByCategory(c echo.Context) error {
	cid, ok := controller.ParseID(c, "category_id")
	if !ok {
		return controller.BadRequest(c, "invalid category id")
	}
	opts, ok := controller.ListOptions(c)
	if !ok {
		return controller.BadRequest(c, "invalid paging")
	}
	rows, err := h.Svc.ByCategory(c.Request().Context(), cid, opts)
	if err != nil {
		return controller.Fail(c, h.Log, "book by category", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/most-reviewed?limit=
func (h *Controller) MostReviewed(c echo.Context) error {
	limit, ok := controller.QueryInt(c, "limit", booksvc.DefaultMostReviewedLimit)
	if !ok || limit < 1 {
		return controller.BadRequest(c, "invalid limit")
	}
	rows, err := h.Svc.MostReviewed(c.Request().Context(), int(limit))
	if err != nil {
		return controller.Fail(c, h.Log, "book most reviewed", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/books/stats
func (h *Controller) Stats(c echo.Context) error {
	st, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		return controller.Fail(c, h.Log, "book stats", err)
	}
	return c.JSON(http.StatusOK, st)
}
