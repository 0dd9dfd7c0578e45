// Package alarm provides the in-process AlarmSink implementation. The sink is
// the local counterpart of the push pipeline: it records ring and silence
// transitions so operators can follow the state machine from the logs.
package alarm

import (
	"context"
	"log/slog"

	"medi/internal/domain/entity"
	"medi/internal/domain/service"

	"go.uber.org/fx"
)

type logSink struct {
	logger *slog.Logger
}

// Params holds dependencies for the alarm sink, injected by Fx.
type Params struct {
	fx.In

	Logger *slog.Logger
}

// NewLogSink creates an AlarmSink that logs transitions.
func NewLogSink(params Params) service.AlarmSink {
	return &logSink{logger: params.Logger}
}

func (s *logSink) Ring(ctx context.Context, alarm *entity.ActiveAlarm) {
	s.logger.InfoContext(ctx, "alarm ringing",
		slog.String("entryID", alarm.EntryID.String()),
		slog.String("kind", string(alarm.Kind)),
		slog.String("displayName", alarm.DisplayName))
}

func (s *logSink) Silence(ctx context.Context) {
	s.logger.InfoContext(ctx, "alarm silenced")
}
