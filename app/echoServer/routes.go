package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/ADEB21/BooksInMyMind/app/echoServer/controller/auth"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/controller/book"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/controller/library"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/controller/seed"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/jwtx"
)

type C struct {
	Auth    *auth.Controller
	Book    *book.Controller
	Library *library.Controller
	Seed    *seed.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	pub.GET("/books/public", c.Book.ListPublic)
	pub.GET("/books/public/:id", c.Book.DetailPublic)

	// guarded by its own bearer secret, not a user session
	pub.POST("/seed", c.Seed.Run)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// resolve the caller once per request; nothing is cached between requests
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromToken(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			return next(ctx)
		}
	})

	// Library (per-user rows)
	authed.GET("/books", c.Library.My)
	authed.GET("/books/:id", c.Library.Get)
	authed.PUT("/books/:id", c.Library.Update)
	authed.DELETE("/books/:id", c.Library.Remove)
	authed.POST("/books/:id/add-to-library", c.Library.Add)
	authed.GET("/library/stats", c.Library.Stats)

	// Catalog (shared rows)
	authed.POST("/books", c.Book.Create)
	authed.PUT("/catalog/:id", c.Book.Update)
	authed.DELETE("/catalog/:id", c.Book.Delete)
}
