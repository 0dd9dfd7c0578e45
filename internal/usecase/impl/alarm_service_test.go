package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medi/config"
	"medi/internal/domain/entity"
	"medi/internal/domain/service"
	"medi/internal/mocks"
	"medi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeClock pins Now to a settable instant.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) NewTicker(time.Duration) service.Ticker {
	panic("not used in alarm tests")
}

type alarmFixture struct {
	svc       usecase.AlarmUsecase
	repo      *mocks.ReminderRepository
	sink      *mocks.AlarmSink
	publisher *mocks.EventPublisher
	clock     *fakeClock
}

func newAlarmFixture(entries []*entity.ReminderEntry) *alarmFixture {
	repo := new(mocks.ReminderRepository)
	repo.On("ListEntries", mock.Anything).Return(entries, nil)

	sink := new(mocks.AlarmSink)
	sink.On("Ring", mock.Anything, mock.Anything).Return()
	sink.On("Silence", mock.Anything).Return()

	publisher := new(mocks.EventPublisher)
	publisher.On("PublishAlarmEvent", mock.Anything, mock.Anything).Return(nil)

	clock := &fakeClock{now: time.Date(2026, time.August, 28, 20, 0, 0, 0, time.Local)}

	svc := NewAlarmService(AlarmServiceParams{
		ReminderRepo: repo,
		Sink:         sink,
		Publisher:    publisher,
		Clock:        clock,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:       &config.Config{},
	})

	return &alarmFixture{svc: svc, repo: repo, sink: sink, publisher: publisher, clock: clock}
}

func metforminEntry() *entity.ReminderEntry {
	return &entity.ReminderEntry{
		ID:         uuid.New(),
		Kind:       entity.ReminderKindMedication,
		Name:       "Metformin",
		Dosage:     "500mg",
		TimeOfDay:  "20:00",
		Recurrence: entity.DailyRecurrence(),
	}
}

func TestEvaluateTick_RaisesDueEntry(t *testing.T) {
	entry := metforminEntry()
	f := newAlarmFixture([]*entity.ReminderEntry{entry})

	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)

	require.NotNil(t, alarm)
	assert.Equal(t, entry.ID, alarm.EntryID)
	assert.Equal(t, "Metformin (500mg)", alarm.DisplayName)

	state := f.svc.State(context.Background())
	assert.True(t, state.Ringing)
	f.sink.AssertCalled(t, "Ring", mock.Anything, alarm)
	f.publisher.AssertCalled(t, "PublishAlarmEvent", mock.Anything, mock.MatchedBy(func(e *service.AlarmEvent) bool {
		return e.EntryID == entry.ID.String() && e.TimeOfDay == "20:00"
	}))
}

func TestEvaluateTick_ExactMinuteMatchOnly(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{metforminEntry()})

	// One minute late. Missed minutes are skipped, never replayed.
	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, alarm)
}

func TestEvaluateTick_SkipsCompletedEntries(t *testing.T) {
	entry := metforminEntry()
	entry.Completed = true
	f := newAlarmFixture([]*entity.ReminderEntry{entry})

	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	assert.Nil(t, alarm)
}

func TestEvaluateTick_SkipsNonMatchingWeekday(t *testing.T) {
	entry := metforminEntry()
	// Fixture clock lands on a Friday.
	entry.Recurrence = entity.CustomDaysRecurrence(time.Monday)
	f := newAlarmFixture([]*entity.ReminderEntry{entry})

	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	assert.Nil(t, alarm)
}

func TestEvaluateTick_FirstMatchWins(t *testing.T) {
	medication := metforminEntry()
	hydration := &entity.ReminderEntry{
		ID:         uuid.New(),
		Kind:       entity.ReminderKindHydration,
		Amount:     "250ml",
		TimeOfDay:  "20:00",
		Recurrence: entity.DailyRecurrence(),
	}
	// The repository lists medications first; a tie at the same minute
	// therefore rings the medication.
	f := newAlarmFixture([]*entity.ReminderEntry{medication, hydration})

	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	require.NotNil(t, alarm)
	assert.Equal(t, medication.ID, alarm.EntryID)
}

func TestEvaluateTick_SingleActiveAlarm(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{metforminEntry()})

	first, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	require.NotNil(t, first)

	// The next tick lands while the alarm still rings: nothing new raises.
	second, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	assert.Nil(t, second)
	f.sink.AssertNumberOfCalls(t, "Ring", 1)
}

func TestEvaluateTick_DisabledRaisesNothing(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{metforminEntry()})

	state := f.svc.SetEnabled(context.Background(), false)
	assert.False(t, state.Enabled)

	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	assert.Nil(t, alarm)
}

func TestEvaluateTick_DayRolloverResetsCompletion(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{})
	f.repo.On("ResetCompleted", mock.Anything).Return(nil)

	_, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	// The very first tick establishes the day without resetting anything.
	f.repo.AssertNotCalled(t, "ResetCompleted", mock.Anything)

	_, err = f.svc.EvaluateTick(context.Background(), f.clock.now.Add(24*time.Hour))
	require.NoError(t, err)
	f.repo.AssertCalled(t, "ResetCompleted", mock.Anything)
}

func TestDismiss_EntryStaysPending(t *testing.T) {
	entry := metforminEntry()
	f := newAlarmFixture([]*entity.ReminderEntry{entry})

	_, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)

	require.NoError(t, f.svc.Dismiss(context.Background()))

	state := f.svc.State(context.Background())
	assert.False(t, state.Ringing)
	assert.False(t, entry.Completed)
	f.sink.AssertCalled(t, "Silence", mock.Anything)

	// A tick within the same minute must not re-raise the dismissed entry.
	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	assert.Nil(t, alarm)
}

func TestDismiss_Idle(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{})

	assert.ErrorIs(t, f.svc.Dismiss(context.Background()), ErrAlarmNotRinging)
}

func TestMarkTaken_CompletesEntry(t *testing.T) {
	entry := metforminEntry()
	f := newAlarmFixture([]*entity.ReminderEntry{entry})
	f.repo.On("FindEntryByID", mock.Anything, entry.ID).Return(entry, nil)
	f.repo.On("UpdateEntry", mock.Anything, mock.MatchedBy(func(e *entity.ReminderEntry) bool {
		return e.ID == entry.ID && e.Completed
	})).Return(nil)

	_, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)

	require.NoError(t, f.svc.MarkTaken(context.Background()))

	state := f.svc.State(context.Background())
	assert.False(t, state.Ringing)
	f.repo.AssertExpectations(t)
}

func TestMarkTaken_Idle(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{})

	assert.ErrorIs(t, f.svc.MarkTaken(context.Background()), ErrAlarmNotRinging)
}

func TestSetEnabled_OffSilencesRingingAlarm(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{metforminEntry()})

	_, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)

	state := f.svc.SetEnabled(context.Background(), false)
	assert.False(t, state.Ringing)
	f.sink.AssertCalled(t, "Silence", mock.Anything)
}

func TestSetEnabled_ReenableIsNotRetroactive(t *testing.T) {
	f := newAlarmFixture([]*entity.ReminderEntry{metforminEntry()})
	f.svc.SetEnabled(context.Background(), false)

	// The due minute passes while disabled.
	alarm, err := f.svc.EvaluateTick(context.Background(), f.clock.now)
	require.NoError(t, err)
	require.Nil(t, alarm)

	f.svc.SetEnabled(context.Background(), true)

	// After re-enabling, the already-passed minute is not replayed.
	alarm, err = f.svc.EvaluateTick(context.Background(), f.clock.now.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, alarm)
}

func TestEvaluateTick_SlowPublishDoesNotBlockAlarmEndpoints(t *testing.T) {
	entry := metforminEntry()

	repo := new(mocks.ReminderRepository)
	repo.On("ListEntries", mock.Anything).Return([]*entity.ReminderEntry{entry}, nil)

	sink := new(mocks.AlarmSink)
	sink.On("Ring", mock.Anything, mock.Anything).Return()
	sink.On("Silence", mock.Anything).Return()

	started := make(chan struct{})
	release := make(chan struct{})
	publisher := new(mocks.EventPublisher)
	publisher.On("PublishAlarmEvent", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil)

	clock := &fakeClock{now: time.Date(2026, time.August, 28, 20, 0, 0, 0, time.Local)}
	svc := NewAlarmService(AlarmServiceParams{
		ReminderRepo: repo,
		Sink:         sink,
		Publisher:    publisher,
		Clock:        clock,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:       &config.Config{},
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		alarm, err := svc.EvaluateTick(context.Background(), clock.now)
		assert.NoError(t, err)
		assert.NotNil(t, alarm)
	}()

	// Wait until the publish is in flight. The raise is already committed,
	// so the alarm endpoints must stay responsive.
	<-started

	stateDone := make(chan *usecase.AlarmState, 1)
	go func() { stateDone <- svc.State(context.Background()) }()
	select {
	case state := <-stateDone:
		assert.True(t, state.Ringing)
	case <-time.After(time.Second):
		t.Fatal("State blocked while a publish was in flight")
	}

	require.NoError(t, svc.Dismiss(context.Background()))
	assert.False(t, svc.State(context.Background()).Ringing)

	close(release)
	<-done
}
