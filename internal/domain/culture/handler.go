package culture

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/web"
)

// Handler provides HTTP handlers for cultures and their susceptibility
// results.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/cultures", h.ListCultures)
	api.POST("/cultures", h.CreateCulture)
	api.GET("/cultures/:id", h.GetCulture)
	api.PUT("/cultures/:id", h.UpdateCulture)
	api.DELETE("/cultures/:id", h.DeleteCulture)

	api.GET("/cultures/:id/results", h.ListResults)
	api.POST("/cultures/:id/results", h.AddResult)
	api.PUT("/results/:id", h.UpdateResult)
	api.DELETE("/results/:id", h.DeleteResult)
}

func (h *Handler) CreateCulture(c echo.Context) error {
	var cl Culture
	if err := c.Bind(&cl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, err := h.svc.Create(c.Request().Context(), &cl); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusCreated, cl)
}

func (h *Handler) GetCulture(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cl, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *Handler) ListCultures(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	cultures, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, cultures)
}

func (h *Handler) UpdateCulture(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	existing, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	var cl Culture
	if err := c.Bind(&cl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cl.ID = id
	cl.PatientID = existing.PatientID
	if err := h.svc.Update(c.Request().Context(), &cl); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *Handler) DeleteCulture(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return web.Error(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddResult(c echo.Context) error {
	cultureID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var s Susceptibility
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.CultureID = cultureID
	if _, err := h.svc.AddResult(c.Request().Context(), &s); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *Handler) ListResults(c echo.Context) error {
	cultureID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	results, err := h.svc.ListResults(c.Request().Context(), cultureID)
	if err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) UpdateResult(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	existing, err := h.svc.GetResult(c.Request().Context(), id)
	if err != nil {
		return web.Error(err)
	}
	var s Susceptibility
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.ID = id
	s.CultureID = existing.CultureID
	if err := h.svc.UpdateResult(c.Request().Context(), &s); err != nil {
		return web.Error(err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) DeleteResult(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteResult(c.Request().Context(), id); err != nil {
		return web.Error(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
