// Package main BooksInMyMind API.
//
// @title           BooksInMyMind API
// @version         1.0
// @description     Personal reading tracker (catalog books, per-user libraries, reading stats).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/ADEB21/BooksInMyMind/app/echoServer"
	authctrl "github.com/ADEB21/BooksInMyMind/app/echoServer/controller/auth"
	bookctrl "github.com/ADEB21/BooksInMyMind/app/echoServer/controller/book"
	libraryctrl "github.com/ADEB21/BooksInMyMind/app/echoServer/controller/library"
	seedctrl "github.com/ADEB21/BooksInMyMind/app/echoServer/controller/seed"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/validation"
	"github.com/ADEB21/BooksInMyMind/config"
	bookrepo "github.com/ADEB21/BooksInMyMind/repository/book"
	libraryrepo "github.com/ADEB21/BooksInMyMind/repository/library"
	userrepo "github.com/ADEB21/BooksInMyMind/repository/user"
	authsvc "github.com/ADEB21/BooksInMyMind/service/auth"
	booksvc "github.com/ADEB21/BooksInMyMind/service/book"
	librarysvc "github.com/ADEB21/BooksInMyMind/service/library"
	seedsvc "github.com/ADEB21/BooksInMyMind/service/seed"
	"github.com/ADEB21/BooksInMyMind/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	br := bookrepo.New(db)
	lr := libraryrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret, cfg.JWTTTLHours)
	bs := booksvc.New(br, lr)
	ls := librarysvc.New(lr)
	ss := seedsvc.New(ur, br, lr)

	// controllers
	v := validation.NewValidate()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	libraryC := &libraryctrl.Controller{Svc: ls, V: v, Log: log}
	seedC := &seedctrl.Controller{Svc: ss, Secret: cfg.SeedSecret, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Book:    bookC,
		Library: libraryC,
		Seed:    seedC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
