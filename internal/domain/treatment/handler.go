package treatment

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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/drug-courses", h.ListDrugCourses)
	api.POST("/drug-courses", h.CreateDrugCourse)
	api.GET("/drug-courses/:id", h.GetDrugCourse)
	api.PUT("/drug-courses/:id", h.UpdateDrugCourse)
	api.DELETE("/drug-courses/:id", h.DeleteDrugCourse)
}

func (h *Handler) CreateDrugCourse(c echo.Context) error {
	var d DrugCourse
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Create(c.Request().Context(), &d); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) GetDrugCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDrugCourses(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	courses, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *Handler) UpdateDrugCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	existing, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	var d DrugCourse
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	d.PatientID = existing.PatientID
	if err := h.svc.Update(c.Request().Context(), &d); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDrugCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return web.Error(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
