package intake

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

// RegisterRoutes registers the intake questionnaire routes. There is
// no PUT: questionnaires are append-only.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/questionnaires", h.ListQuestionnaires)
	api.GET("/questionnaires/latest", h.LatestQuestionnaire)
	api.POST("/questionnaires", h.CreateQuestionnaire)
	api.GET("/questionnaires/:id", h.GetQuestionnaire)
	api.DELETE("/questionnaires/:id", h.DeleteQuestionnaire)
}

func (h *Handler) CreateQuestionnaire(c echo.Context) error {
	var q Questionnaire
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Create(c.Request().Context(), &q); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusCreated, q)
}

func (h *Handler) GetQuestionnaire(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	q, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *Handler) ListQuestionnaires(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	questionnaires, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, questionnaires)
}

func (h *Handler) LatestQuestionnaire(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	q, err := h.svc.LatestByPatient(c.Request().Context(), patientID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, q)
}

func (h *Handler) DeleteQuestionnaire(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return web.Error(err)
	}
	return c.NoContent(http.StatusNoContent)
}
