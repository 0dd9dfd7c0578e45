// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"log/slog"
	"net/http"

	"medi/internal/delivery/http/response"
	"medi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler holds dependencies for provider directory handlers
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// directoryQuery represents the query parameters common to directory reads.
// An explicit lat/lon pair overrides the session reference location.
type directoryQuery struct {
	Latitude  *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `query:"lon" validate:"omitempty,min=-180,max=180"`
	City      string   `query:"city"`
	Limit     int      `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (q *directoryQuery) toRankInput() *usecase.RankInput {
	input := &usecase.RankInput{
		CityFilter: q.City,
		Limit:      q.Limit,
	}
	if q.Latitude != nil && q.Longitude != nil {
		point := orb.Point{*q.Longitude, *q.Latitude}
		input.Reference = &point
	}

	return input
}

// ListGrouped handles GET /directory
func (h *DirectoryHandler) ListGrouped(c echo.Context) error {
	var query directoryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid directory query")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	groups, err := h.directoryUC.ListGrouped(c.Request().Context(), query.toRankInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// ListProviders handles GET /directory/providers
func (h *DirectoryHandler) ListProviders(c echo.Context) error {
	var query directoryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid directory query")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	providers, err := h.directoryUC.ListProviders(c.Request().Context(), query.toRankInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, providers, "")
}
