package usecase

import (
	"context"
	"time"

	"medi/internal/domain/entity"
)

// AlarmState is a snapshot of the alarm state machine.
type AlarmState struct {
	Enabled bool                `json:"enabled"`
	Ringing bool                `json:"ringing"`
	Alarm   *entity.ActiveAlarm `json:"alarm,omitempty"`
}

// AlarmUsecase owns the Idle/Ringing state machine. All mutation goes through
// it, keeping the active-alarm singleton invariant in one place.
type AlarmUsecase interface {
	// State returns the current alarm state.
	State(ctx context.Context) *AlarmState

	// SetEnabled flips the global alarm switch. Disabling does not queue
	// skipped occurrences; re-enabling is not retroactive.
	SetEnabled(ctx context.Context, enabled bool) *AlarmState

	// EvaluateTick runs one scheduler tick at the given time: resets
	// completion flags on a day rollover, then raises at most one due
	// Pending entry as the active alarm. Returns the raised alarm, or nil.
	EvaluateTick(ctx context.Context, now time.Time) (*entity.ActiveAlarm, error)

	// Dismiss silences the active alarm; the entry stays Pending.
	Dismiss(ctx context.Context) error

	// MarkTaken silences the active alarm and completes its entry for the
	// current occurrence.
	MarkTaken(ctx context.Context) error
}
