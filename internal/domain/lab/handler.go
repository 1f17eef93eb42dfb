package lab

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/web"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the lab panel routes. There is no PUT:
// panels are append-only snapshots.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/lab-panels", h.ListPanels)
	api.GET("/lab-panels/latest", h.LatestPanel)
	api.POST("/lab-panels", h.CreatePanel)
	api.GET("/lab-panels/:id", h.GetPanel)
	api.DELETE("/lab-panels/:id", h.DeletePanel)
}

func (h *Handler) CreatePanel(c echo.Context) error {
	var p Panel
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPanel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPanels(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	panels, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, panels)
}

func (h *Handler) LatestPanel(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	p, err := h.svc.LatestByPatient(c.Request().Context(), patientID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePanel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return web.Error(err)
	}
	return c.NoContent(http.StatusNoContent)
}
