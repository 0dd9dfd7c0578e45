package service

import (
	"context"

	"medi/internal/domain/entity"
)

// AlarmSink is the opaque notification/audio surface invoked when the alarm
// state machine enters Ringing and when it returns to Idle. Implementations
// must be non-blocking from the scheduler's perspective.
type AlarmSink interface {
	// Ring is invoked once when an alarm is raised.
	Ring(ctx context.Context, alarm *entity.ActiveAlarm)

	// Silence is invoked once when the active alarm is cleared.
	Silence(ctx context.Context)
}
