package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ADEB21/BooksInMyMind/app/echoServer/jwtx"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/validation"
	"github.com/ADEB21/BooksInMyMind/model"
	booksvc "github.com/ADEB21/BooksInMyMind/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create a catalog book
// @Summary      Create book
// @Description  Create a catalog book, upserting authors/genres by name; personal fields also add it to the caller's library
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateBookReq  true  "Book payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/books [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	uid, _ := jwtx.UserID(c)

	b, ub, err := h.Svc.Create(c.Request().Context(), uid, req.bookFields(), req.Authors, req.Genres, req.personal())
	if err != nil {
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	resp := echo.Map{"message": "book created", "book": b}
	if ub != nil {
		resp["user_book"] = ub
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListPublic lists the shared catalog
// @Summary      Public catalog
// @Description  List all catalog books with optional case-insensitive filters
// @Tags         books
// @Produce      json
// @Param        search  query  string  false  "substring of title or summary"
// @Param        author  query  string  false  "substring of an author name"
// @Param        genre   query  string  false  "substring of a genre name"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/books/public [get]
func (h *Controller) ListPublic(c echo.Context) error {
	f := model.BookFilter{
		Search: c.QueryParam("search"),
		Author: c.QueryParam("author"),
		Genre:  c.QueryParam("genre"),
	}
	books, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if books == nil {
		books = []model.Book{}
	}
	return c.JSON(http.StatusOK, echo.Map{"books": books})
}

// DetailPublic returns one catalog book
// @Summary      Catalog book detail
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "book id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/books/public/{id} [get]
func (h *Controller) DetailPublic(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"book": b})
}

// Update shared catalog fields
// @Summary      Update catalog book
// @Description  Mutates shared fields only; any authenticated user may edit catalog data
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path  int               true  "book id"
// @Param        payload  body  UpdateCatalogReq  true  "Fields to change"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/catalog/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateCatalogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	b, err := h.Svc.UpdateShared(c.Request().Context(), id, req.bookFields(), req.Authors, req.Genres)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book updated", "book": b})
}

// Delete a catalog book
// @Summary      Delete catalog book
// @Description  Removes the book; library rows referencing it are cascaded away
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "book id"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/catalog/{id} [delete]
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book deleted"})
}
