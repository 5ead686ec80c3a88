package echoServer

import (
	"net/http"

	"library/app/echoServer/controller/auth"
	"library/app/echoServer/controller/book"
	"library/app/echoServer/controller/category"
	"library/app/echoServer/controller/loan"
	"library/app/echoServer/controller/review"
	"library/app/echoServer/controller/user"
	"library/app/echoServer/jwtx"
	jwtutil "library/util/jwt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	User      *user.Controller
	Book      *book.Controller
	Loan      *loan.Controller
	Category  *category.Controller
	Review    *review.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users", c.User.Register)
	pub.POST("/auth/login", c.Auth.Login)

	// Auth
	api := e.Group("/v1")
	api.Use(echojwt.WithConfig(echojwt.Config{
		ContextKey:  jwtx.ContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return jwtutil.Parse(token, c.JWTSecret)
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			ctx.Logger().Warnf("[AUTH] rejected req_id=%s ip=%s err=%v",
				ctx.Response().Header().Get(echo.HeaderXRequestID), ctx.RealIP(), err)
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		},
	}))

	// Users
	api.GET("/users", c.User.List)
	api.GET("/users/me", c.User.Me)
	api.GET("/users/:id", c.User.Detail)
	api.PATCH("/users/:id", c.User.Update)
	api.POST("/users/:id/update-password", c.User.UpdatePassword)
	api.DELETE("/users/:id", c.User.Delete)

	// Books
	api.GET("/books", c.Book.List)
	api.POST("/books", c.Book.Create)
	api.GET("/books/search/", c.Book.SearchByTitle)
	api.GET("/books/search-by-author", c.Book.SearchByAuthor)
	api.GET("/books/filter", c.Book.FilterByYear)
	api.GET("/books/recent", c.Book.Recent)
	api.GET("/books/stats", c.Book.Stats)
	api.GET("/books/available", c.Book.Available)
	api.GET("/books/by-category/:category_id", c.Book.ByCategory)
	api.GET("/books/most-reviewed", c.Book.MostReviewed)
	api.GET("/books/:id", c.Book.Detail)
	api.PATCH("/books/:id", c.Book.Update)
	api.PATCH("/books/:id/stock", c.Book.AdjustStock)
	api.DELETE("/books/:id", c.Book.Delete)

	// Loans
	api.GET("/loans", c.Loan.List)
	api.POST("/loans", c.Loan.Create)
	api.GET("/loans/:id", c.Loan.Detail)
	api.PATCH("/loans/:id", c.Loan.Update)
	api.DELETE("/loans/:id", c.Loan.Delete)

	// Categories
	api.GET("/categories", c.Category.List)
	api.POST("/categories", c.Category.Create)
	api.GET("/categories/:id", c.Category.Detail)
	api.PATCH("/categories/:id", c.Category.Update)
	api.DELETE("/categories/:id", c.Category.Delete)

	// Reviews
	api.GET("/reviews", c.Review.List)
	api.POST("/reviews", c.Review.Create)
	api.GET("/reviews/:id", c.Review.Detail)
	api.PATCH("/reviews/:id", c.Review.Update)
	api.DELETE("/reviews/:id", c.Review.Delete)
}
