package handler

import (
	"log/slog"
	"net/http"

	"medi/internal/delivery/http/response"
	"medi/internal/usecase"
	"medi/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AlarmHandlerParams holds dependencies for AlarmHandler, injected by Fx.
type AlarmHandlerParams struct {
	fx.In

	AlarmUC usecase.AlarmUsecase
	Logger  *slog.Logger
}

// AlarmHandler holds dependencies for alarm state machine handlers
type AlarmHandler struct {
	alarmUC usecase.AlarmUsecase
	logger  *slog.Logger
}

// NewAlarmHandler is the constructor for AlarmHandler
func NewAlarmHandler(params AlarmHandlerParams) *AlarmHandler {
	return &AlarmHandler{
		alarmUC: params.AlarmUC,
		logger:  params.Logger,
	}
}

// SetEnabledRequest represents the global alarm switch position
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// State handles GET /alarm
func (h *AlarmHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.alarmUC.State(c.Request().Context()), "")
}

// Dismiss handles POST /alarm/dismiss
func (h *AlarmHandler) Dismiss(c echo.Context) error {
	if err := h.alarmUC.Dismiss(c.Request().Context()); err != nil {
		if errors.Is(err, impl.ErrAlarmNotRinging) {
			return response.Conflict(c, "ALARM_NOT_RINGING", "No alarm is ringing")
		}

		return err
	}

	return response.Success(c, http.StatusOK, h.alarmUC.State(c.Request().Context()), "Alarm dismissed")
}

// MarkTaken handles POST /alarm/taken
func (h *AlarmHandler) MarkTaken(c echo.Context) error {
	if err := h.alarmUC.MarkTaken(c.Request().Context()); err != nil {
		if errors.Is(err, impl.ErrAlarmNotRinging) {
			return response.Conflict(c, "ALARM_NOT_RINGING", "No alarm is ringing")
		}

		return err
	}

	return response.Success(c, http.StatusOK, h.alarmUC.State(c.Request().Context()), "Marked as taken")
}

// SetEnabled handles PUT /alarm/enabled
func (h *AlarmHandler) SetEnabled(c echo.Context) error {
	var req SetEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm switch input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state := h.alarmUC.SetEnabled(c.Request().Context(), *req.Enabled)

	return response.Success(c, http.StatusOK, state, "Alarm switch updated")
}
