package library

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ADEB21/BooksInMyMind/app/echoServer/jwtx"
	"github.com/ADEB21/BooksInMyMind/app/echoServer/validation"
	"github.com/ADEB21/BooksInMyMind/model"
	librarysvc "github.com/ADEB21/BooksInMyMind/service/library"
)

type Controller struct {
	Svc librarysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// My library
// @Summary      My library
// @Description  List the caller's library rows, newest first, joined with their books
// @Tags         library
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/books [get]
func (h *Controller) My(c echo.Context) error {
	uid, _ := jwtx.UserID(c)
	rows, err := h.Svc.My(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("library list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.UserBook{}
	}
	return c.JSON(http.StatusOK, echo.Map{"books": rows})
}

// Get one library row
// @Summary      Library entry detail
// @Description  A row owned by another user reads as not found
// @Tags         library
// @Produce      json
// @Param        id  path  int  true  "library entry id"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/books/{id} [get]
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := jwtx.UserID(c)
	ub, err := h.Svc.Get(c.Request().Context(), uid, id)
	if err != nil {
		if librarysvc.Code(err) == librarysvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("library get error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user_book": ub})
}

// Add a catalog book to the caller's library
// @Summary      Add to library
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        id       path  int                true  "catalog book id"
// @Param        payload  body  PersonalFieldsReq  true  "Personal fields"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "already in library"
// @Security     BearerAuth
// @Router       /v1/books/{id}/add-to-library [post]
func (h *Controller) Add(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req PersonalFieldsReq
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

	ub, err := h.Svc.Add(c.Request().Context(), uid, bookID, req.fields())
	if err != nil {
		switch librarysvc.Code(err) {
		case librarysvc.ErrAlreadyAdded:
			return c.JSON(http.StatusConflict, echo.Map{"message": "book already in your library"})
		case librarysvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		default:
			h.Log.Error("library add error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "book added to library",
		"user_book": ub,
	})
}

// Update personal fields
// @Summary      Update library entry
// @Description  Mutates personal fields only; the shared book is untouched
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        id       path  int                true  "library entry id"
// @Param        payload  body  PersonalFieldsReq  true  "Fields to change"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/books/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req PersonalFieldsReq
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

	ub, err := h.Svc.Update(c.Request().Context(), uid, id, req.fields())
	if err != nil {
		if librarysvc.Code(err) == librarysvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("library update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book updated", "user_book": ub})
}

// Remove a library row
// @Summary      Remove from library
// @Description  Deletes the caller's row; the catalog book persists
// @Tags         library
// @Produce      json
// @Param        id  path  int  true  "library entry id"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/books/{id} [delete]
func (h *Controller) Remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := jwtx.UserID(c)
	if err := h.Svc.Remove(c.Request().Context(), uid, id); err != nil {
		if librarysvc.Code(err) == librarysvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("library delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book removed from library"})
}

// Stats
// @Summary      Library statistics
// @Tags         library
// @Produce      json
// @Success      200  {object}  model.LibraryStats
// @Failure      401  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/library/stats [get]
func (h *Controller) Stats(c echo.Context) error {
	uid, _ := jwtx.UserID(c)
	s, err := h.Svc.Stats(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("library stats error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, s)
}
