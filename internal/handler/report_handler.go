package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/auth"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/errors"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/service"
)

// ReportHandler handles hazard report endpoints.
type ReportHandler struct {
	reportService service.ReportService
	jwtService    *auth.JWTService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService, jwtService *auth.JWTService) *ReportHandler {
	return &ReportHandler{reportService: reportService, jwtService: jwtService}
}

// SubmitReportRequest represents a hazard report submission. Latitude and
// longitude are pointers so that an omitted coordinate is distinguishable
// from a legitimate zero.
type SubmitReportRequest struct {
	Description string   `json:"description" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	ImageURL    string   `json:"imageUrl"`
	AudioURL    string   `json:"audioUrl"`
	Location    string   `json:"location"`
	UserID      string   `json:"userId"`
}

// ReportResponse wraps a single created report.
type ReportResponse struct {
	Report model.HazardReport `json:"report"`
}

// ReportListResponse wraps a report listing.
type ReportListResponse struct {
	Reports []model.HazardReport `json:"reports"`
}

// Submit godoc
// @Summary Submit a hazard report
// @Tags hazard-reports
// @Accept json
// @Produce json
// @Param request body SubmitReportRequest true "Report data"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hazard-reports [post]
func (h *ReportHandler) Submit(c echo.Context) error {
	var req SubmitReportRequest
	if err := c.Bind(&req); err != nil {
		return errors.NewValidationError(nil)
	}

	// The mobile client sends userId in the body; a bearer token, when
	// present and valid, identifies the submitter authoritatively.
	userID := req.UserID
	if tokenUserID := h.bearerUserID(c); tokenUserID != "" {
		userID = tokenUserID
	}
	if userID == "" {
		return errors.MapErrorToHTTP(errors.ErrUserIDRequired)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.reportService.Submit(c.Request().Context(), service.SubmitReportInput{
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		ImageURL:    req.ImageURL,
		AudioURL:    req.AudioURL,
		Location:    req.Location,
		UserID:      userID,
	})
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, ReportResponse{Report: *report})
}

// ListAll godoc
// @Summary List all hazard reports, most recent first
// @Tags hazard-reports
// @Produce json
// @Success 200 {object} ReportListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hazard-reports [get]
func (h *ReportHandler) ListAll(c echo.Context) error {
	reports, err := h.reportService.ListAll(c.Request().Context())
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, ReportListResponse{Reports: reports})
}

// ListByUser godoc
// @Summary List a user's hazard reports, most recent first
// @Tags hazard-reports
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} ReportListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /hazard-reports/user/{userId} [get]
func (h *ReportHandler) ListByUser(c echo.Context) error {
	reports, err := h.reportService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, ReportListResponse{Reports: reports})
}

// bearerUserID returns the user id from a valid Authorization bearer token,
// or empty when the header is absent or the token does not verify.
func (h *ReportHandler) bearerUserID(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	claims, err := h.jwtService.ValidateToken(strings.TrimPrefix(header, prefix))
	if err != nil {
		return ""
	}
	return claims.UserID
}
