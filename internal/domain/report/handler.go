package report

import (
	"bytes"
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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/report", h.GetReport)
	api.GET("/patients/:id/report.html", h.GetReportHTML)
}

func (h *Handler) GetReport(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sum, err := h.svc.Summary(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) GetReportHTML(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sum, err := h.svc.Summary(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	var buf bytes.Buffer
	if err := RenderHTML(&buf, sum); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "render report")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
