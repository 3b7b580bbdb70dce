package seed

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	seedsvc "github.com/ADEB21/BooksInMyMind/service/seed"
)

type Controller struct {
	Svc    seedsvc.Service
	Secret string
	Log    *slog.Logger
}

// Seed demo data
// @Summary      Seed demo data
// @Description  Loads a demo user and sample books once; guarded by the seed secret
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /v1/seed [post]
func (h *Controller) Run(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	want := "Bearer " + h.Secret
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(authHeader)), []byte(want)) != 1 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	seeded, err := h.Svc.Run(c.Request().Context())
	if err != nil {
		h.Log.Error("seed failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if !seeded {
		return c.JSON(http.StatusOK, echo.Map{"message": "database already seeded"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "database seeded"})
}
