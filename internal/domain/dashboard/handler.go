package dashboard

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/validation"
)

type Handler struct {
	svc   *Service
	today func() string
}

// NewHandler creates the dashboard endpoint. today supplies the day used
// when the request does not name one.
func NewHandler(svc *Service, today func() string) *Handler {
	return &Handler{svc: svc, today: today}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RolePhysician, auth.RoleNurse, auth.RoleReceptionist))
	g.GET("/dashboard", h.GetSummary)
}

func (h *Handler) GetSummary(c echo.Context) error {
	day := c.QueryParam("today")
	if day == "" {
		day = h.today()
	}
	sum, err := h.svc.Summary(c.Request().Context(), day)
	if err != nil {
		if errors.Is(err, validation.ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}
