package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"medi/config"
	"medi/internal/domain/entity"
	"medi/internal/domain/repository"
	"medi/internal/domain/service"
	"medi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrAlarmNotRinging is returned by Dismiss and MarkTaken in the Idle state.
var ErrAlarmNotRinging = errors.New("no alarm is ringing")

// clockMinute is the exact-match key a reminder's TimeOfDay is compared with.
const clockMinute = "15:04"

type alarmService struct {
	reminderRepo repository.ReminderRepository
	sink         service.AlarmSink
	publisher    service.EventPublisher
	clock        service.Clock
	logger       *slog.Logger
	deviceTokens []string

	// mu guards all state below. Scheduler ticks and HTTP handlers both
	// mutate the state machine.
	mu              sync.Mutex
	enabled         bool
	active          *entity.ActiveAlarm
	lastResetDay    int // YearDay of the last completion reset.
	dismissedEntry  uuid.UUID
	dismissedMinute string // "HH:MM" minute within which dismissedEntry stays silenced.
}

// AlarmServiceParams holds dependencies for AlarmService, injected by Fx.
type AlarmServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	Sink         service.AlarmSink
	Publisher    service.EventPublisher
	Clock        service.Clock
	Logger       *slog.Logger
	Config       *config.Config
}

// NewAlarmService creates a new alarm service instance. Alarms start enabled.
func NewAlarmService(params AlarmServiceParams) usecase.AlarmUsecase {
	var tokens []string
	if params.Config.Notifier != nil {
		tokens = params.Config.Notifier.DeviceTokens
	}

	return &alarmService{
		reminderRepo: params.ReminderRepo,
		sink:         params.Sink,
		publisher:    params.Publisher,
		clock:        params.Clock,
		logger:       params.Logger,
		deviceTokens: tokens,
		enabled:      true,
		lastResetDay: -1,
	}
}

// State returns the current alarm state.
func (s *alarmService) State(_ context.Context) *usecase.AlarmState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &usecase.AlarmState{
		Enabled: s.enabled,
		Ringing: s.active != nil,
		Alarm:   s.active,
	}
}

// SetEnabled flips the global alarm switch. Disabling silences a ringing
// alarm; its entry stays Pending, same as a dismiss.
func (s *alarmService) SetEnabled(ctx context.Context, enabled bool) *usecase.AlarmState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = enabled
	if !enabled && s.active != nil {
		s.silenceLocked(ctx)
	}

	return &usecase.AlarmState{
		Enabled: s.enabled,
		Ringing: s.active != nil,
		Alarm:   s.active,
	}
}

// EvaluateTick runs one scheduler pass at the given time. At most one entry
// is raised per tick; ticks that land while an alarm is ringing, or whose
// minute no entry matches, are no-ops. Minutes skipped between ticks are
// never replayed.
func (s *alarmService) EvaluateTick(ctx context.Context, now time.Time) (*entity.ActiveAlarm, error) {
	alarm, event, err := s.raiseDue(ctx, now)
	if err != nil || alarm == nil {
		return nil, err
	}

	// The publish is a network wait. It runs after the state lock is
	// released so a user can still dismiss the alarm mid-publish.
	s.publish(ctx, event)

	return alarm, nil
}

// raiseDue holds the state lock for one pass: day rollover bookkeeping, then
// the scan for the first due Pending entry.
func (s *alarmService) raiseDue(ctx context.Context, now time.Time) (*entity.ActiveAlarm, *service.AlarmEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day := now.YearDay(); day != s.lastResetDay {
		if s.lastResetDay >= 0 {
			if err := s.reminderRepo.ResetCompleted(ctx); err != nil {
				return nil, nil, errors.Wrap(err, "failed to reset completion flags")
			}
		}
		s.lastResetDay = day
		s.dismissedEntry = uuid.Nil
		s.dismissedMinute = ""
	}

	if !s.enabled || s.active != nil {
		return nil, nil, nil
	}

	entries, err := s.reminderRepo.ListEntries(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list reminder entries")
	}

	minute := now.Format(clockMinute)
	for _, entry := range entries {
		if entry.Completed || entry.TimeOfDay != minute || !entry.Recurrence.Matches(now.Weekday()) {
			continue
		}
		if entry.ID == s.dismissedEntry && minute == s.dismissedMinute {
			continue
		}

		alarm := &entity.ActiveAlarm{
			EntryID:     entry.ID,
			Kind:        entry.Kind,
			DisplayName: entry.DisplayName(),
		}
		s.active = alarm
		s.sink.Ring(ctx, alarm)

		event := &service.AlarmEvent{
			RequestID:    uuid.NewString(),
			EntryID:      entry.ID.String(),
			Kind:         string(entry.Kind),
			DisplayName:  entry.DisplayName(),
			TimeOfDay:    entry.TimeOfDay,
			RaisedAt:     now.Format(time.RFC3339),
			DeviceTokens: s.deviceTokens,
		}

		return alarm, event, nil
	}

	return nil, nil, nil
}

// Dismiss silences the active alarm without completing its entry. The entry
// is suppressed for the remainder of the matching minute so the next tick
// does not immediately re-raise it.
func (s *alarmService) Dismiss(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return ErrAlarmNotRinging
	}

	s.dismissedEntry = s.active.EntryID
	s.dismissedMinute = s.clock.Now().Format(clockMinute)
	s.silenceLocked(ctx)

	return nil
}

// MarkTaken silences the active alarm and completes its entry for the
// current occurrence.
func (s *alarmService) MarkTaken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return ErrAlarmNotRinging
	}

	entry, err := s.reminderRepo.FindEntryByID(ctx, s.active.EntryID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderEntryNotFound) {
			// Entry deleted while ringing. Just silence.
			s.silenceLocked(ctx)

			return nil
		}

		return errors.Wrap(err, "failed to find ringing entry")
	}

	entry.Completed = true
	entry.UpdatedAt = s.clock.Now()
	if err := s.reminderRepo.UpdateEntry(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to complete ringing entry")
	}

	s.silenceLocked(ctx)

	return nil
}

func (s *alarmService) silenceLocked(ctx context.Context) {
	s.active = nil
	s.sink.Silence(ctx)
}

// publish hands the raised alarm to the async notification pipeline. Delivery
// is best-effort; a publish failure never blocks the ring.
func (s *alarmService) publish(ctx context.Context, event *service.AlarmEvent) {
	if err := s.publisher.PublishAlarmEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish alarm event",
			slog.String("entryID", event.EntryID),
			slog.Any("error", err))
	}
}
