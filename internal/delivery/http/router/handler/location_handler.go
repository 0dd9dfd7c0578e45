package handler

import (
	"log/slog"
	"net/http"

	"medi/internal/delivery/http/response"
	"medi/internal/domain/service"
	"medi/internal/usecase"
	"medi/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for reference-location handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportFixRequest represents a device geolocation fix
type ReportFixRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// ReportFixErrorRequest represents a device geolocation failure
type ReportFixErrorRequest struct {
	Code string `json:"code" validate:"required"`
}

// ResolveQueryRequest represents a free-text place lookup
type ResolveQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

// Current handles GET /location
func (h *LocationHandler) Current(c echo.Context) error {
	reference := h.locationUC.Current(c.Request().Context())
	if reference == nil {
		return response.Success(c, http.StatusOK, nil, "No reference location set")
	}

	return response.Success(c, http.StatusOK, reference, "")
}

// ReportFix handles POST /location/fix
func (h *LocationHandler) ReportFix(c echo.Context) error {
	var req ReportFixRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location fix input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reference, err := h.locationUC.ReportFix(c.Request().Context(), req.Latitude, req.Longitude)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, reference, "Reference location updated")
}

// ReportFixError handles POST /location/fix/error
func (h *LocationHandler) ReportFixError(c echo.Context) error {
	var req ReportFixErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fix error input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.locationUC.ReportFixError(c.Request().Context(), req.Code)
	if err != nil {
		if errors.Is(err, impl.ErrUnknownFixError) {
			return response.BadRequest(c, "UNKNOWN_FIX_ERROR", "Unknown geolocation error code")
		}

		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message}, "Reference location cleared")
}

// ResolveQuery handles POST /location/query
func (h *LocationHandler) ResolveQuery(c echo.Context) error {
	var req ResolveQueryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location query input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reference, err := h.locationUC.ResolveQuery(c.Request().Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, impl.ErrEmptyQuery):
			return response.BadRequest(c, "EMPTY_QUERY", "Location query must not be empty")
		case errors.Is(err, service.ErrGeocodeNoMatch):
			return response.NotFound(c, "GEOCODE_NO_MATCH", "Could not find location: "+req.Query)
		case errors.Is(err, service.ErrGeocodeUnavailable):
			return response.BadGateway(c, "GEOCODE_UNAVAILABLE", "Failed to search for the location. Please try again.")
		}

		return err
	}

	if reference == nil {
		// A newer query superseded this one; its result was applied instead.
		return response.Success(c, http.StatusOK, h.locationUC.Current(c.Request().Context()), "Superseded by a newer query")
	}

	return response.Success(c, http.StatusOK, reference, "Reference location updated")
}

// Clear handles DELETE /location
func (h *LocationHandler) Clear(c echo.Context) error {
	h.locationUC.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Reference location cleared")
}
