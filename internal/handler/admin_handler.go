package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/classify"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/errors"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/service"
)

// AdminHandler serves the triage views behind the admin portal.
type AdminHandler struct {
	triageService service.TriageService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(triageService service.TriageService) *AdminHandler {
	return &AdminHandler{triageService: triageService}
}

// TriageListResponse wraps the graded report queue.
type TriageListResponse struct {
	Reports []service.TriagedReport `json:"reports"`
}

// Triage godoc
// @Summary List triaged reports with computed severity and priority
// @Tags admin
// @Produce json
// @Param priority query string false "Filter by priority (low|medium|high|critical)"
// @Param q query string false "Free-text match on description or location"
// @Success 200 {object} TriageListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/reports [get]
func (h *AdminHandler) Triage(c echo.Context) error {
	filter := service.TriageFilter{Query: c.QueryParam("q")}
	if p := c.QueryParam("priority"); p != "" {
		if !classify.ValidPriority(p) {
			return errors.NewHTTPError(http.StatusBadRequest, "Unknown priority")
		}
		filter.Priority = classify.Priority(p)
	}

	reports, err := h.triageService.Triage(c.Request().Context(), filter)
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, TriageListResponse{Reports: reports})
}

// Stats godoc
// @Summary Triage queue totals grouped by priority
// @Tags admin
// @Produce json
// @Success 200 {object} service.TriageStats
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/reports/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.triageService.Stats(c.Request().Context())
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, stats)
}
