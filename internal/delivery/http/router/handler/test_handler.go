package handler

import (
	"net/http"

	"medi/internal/delivery/http/response"
	"medi/internal/domain/service"
	"medi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	AlarmUC usecase.AlarmUsecase
	Clock   service.Clock
}

// TestHandler exposes endpoints for exercising the scheduler without waiting
// for wall-clock time. Only mounted when test routes are enabled.
type TestHandler struct {
	alarmUC usecase.AlarmUsecase
	clock   service.Clock
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		alarmUC: params.AlarmUC,
		clock:   params.Clock,
	}
}

// TriggerTick runs one scheduler evaluation at the current time.
func (h *TestHandler) TriggerTick(c echo.Context) error {
	alarm, err := h.alarmUC.EvaluateTick(c.Request().Context(), h.clock.Now())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"raised": alarm != nil,
		"alarm":  alarm,
	}, "Tick evaluated")
}
