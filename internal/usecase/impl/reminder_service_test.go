package impl

import (
	"context"
	"testing"
	"time"

	"medi/internal/domain/entity"
	"medi/internal/domain/repository"
	"medi/internal/mocks"
	"medi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reminderNow = time.Date(2026, time.August, 28, 7, 30, 0, 0, time.Local)

func newReminderFixture() (usecase.ReminderUsecase, *mocks.ReminderRepository) {
	repo := new(mocks.ReminderRepository)
	svc := NewReminderService(ReminderServiceParams{
		ReminderRepo: repo,
		Clock:        &fakeClock{now: reminderNow},
	})

	return svc, repo
}

func TestAddMedication(t *testing.T) {
	svc, repo := newReminderFixture()
	repo.On("CreateEntry", mock.Anything, mock.Anything).Return(nil)

	entry, err := svc.AddMedication(context.Background(), &usecase.AddMedicationInput{
		Name:      "Lisinopril",
		Dosage:    "10mg",
		TimeOfDay: "08:00",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReminderKindMedication, entry.Kind)
	assert.Equal(t, "08:00", entry.TimeOfDay)
	assert.Equal(t, entity.RecurrenceDaily, entry.Recurrence.Type)
	assert.False(t, entry.Completed)
	assert.Equal(t, "Lisinopril (10mg)", entry.DisplayName())
	assert.True(t, entry.CreatedAt.Equal(reminderNow))
	repo.AssertExpectations(t)
}

func TestAddMedication_Validation(t *testing.T) {
	svc, _ := newReminderFixture()

	cases := []struct {
		name    string
		input   *usecase.AddMedicationInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   &usecase.AddMedicationInput{Dosage: "10mg", TimeOfDay: "08:00"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty dosage",
			input:   &usecase.AddMedicationInput{Name: "Lisinopril", TimeOfDay: "08:00"},
			wantErr: ErrDosageRequired,
		},
		{
			name:    "bad time",
			input:   &usecase.AddMedicationInput{Name: "Lisinopril", Dosage: "10mg", TimeOfDay: "25:00"},
			wantErr: ErrInvalidTimeOfDay,
		},
		{
			name:    "seconds not allowed",
			input:   &usecase.AddMedicationInput{Name: "Lisinopril", Dosage: "10mg", TimeOfDay: "08:00:00"},
			wantErr: ErrInvalidTimeOfDay,
		},
		{
			name: "custom recurrence without days",
			input: &usecase.AddMedicationInput{
				Name: "Lisinopril", Dosage: "10mg", TimeOfDay: "08:00",
				Recurrence: entity.Recurrence{Type: entity.RecurrenceCustomDays},
			},
			wantErr: ErrEmptyCustomDays,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddMedication(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddMedication_PadsSingleDigitHour(t *testing.T) {
	svc, repo := newReminderFixture()
	repo.On("CreateEntry", mock.Anything, mock.Anything).Return(nil)

	entry, err := svc.AddMedication(context.Background(), &usecase.AddMedicationInput{
		Name:      "Metformin",
		Dosage:    "500mg",
		TimeOfDay: "8:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", entry.TimeOfDay)
}

func TestAddHydration(t *testing.T) {
	svc, repo := newReminderFixture()
	repo.On("CreateEntry", mock.Anything, mock.Anything).Return(nil)

	entry, err := svc.AddHydration(context.Background(), &usecase.AddHydrationInput{
		Amount:     "250ml",
		TimeOfDay:  "09:00",
		Recurrence: entity.CustomDaysRecurrence(time.Monday, time.Wednesday),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReminderKindHydration, entry.Kind)
	assert.Equal(t, "250ml of water", entry.DisplayName())
	assert.True(t, entry.Recurrence.Matches(time.Monday))
	assert.False(t, entry.Recurrence.Matches(time.Tuesday))
}

func TestAddHydration_RequiresAmount(t *testing.T) {
	svc, _ := newReminderFixture()

	_, err := svc.AddHydration(context.Background(), &usecase.AddHydrationInput{TimeOfDay: "09:00"})
	assert.ErrorIs(t, err, ErrAmountRequired)
}

func TestList_SplitsByKind(t *testing.T) {
	svc, repo := newReminderFixture()
	repo.On("ListEntries", mock.Anything).Return([]*entity.ReminderEntry{
		{ID: uuid.New(), Kind: entity.ReminderKindMedication, Name: "Lisinopril"},
		{ID: uuid.New(), Kind: entity.ReminderKindHydration, Amount: "250ml"},
		{ID: uuid.New(), Kind: entity.ReminderKindMedication, Name: "Metformin"},
	}, nil)
	repo.On("ListAppointments", mock.Anything).Return([]*entity.Appointment{
		{ID: uuid.New(), Doctor: "Dr. Priya Sharma"},
	}, nil)

	lists, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, lists.Medications, 2)
	assert.Len(t, lists.Hydration, 1)
	assert.Len(t, lists.Appointments, 1)
}

func TestToggleCompleted(t *testing.T) {
	svc, repo := newReminderFixture()
	id := uuid.New()
	repo.On("FindEntryByID", mock.Anything, id).Return(&entity.ReminderEntry{
		ID:   id,
		Kind: entity.ReminderKindMedication,
	}, nil)
	repo.On("UpdateEntry", mock.Anything, mock.MatchedBy(func(e *entity.ReminderEntry) bool {
		return e.Completed
	})).Return(nil)

	entry, err := svc.ToggleCompleted(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, entry.Completed)
	repo.AssertExpectations(t)
}

func TestToggleCompleted_NotFound(t *testing.T) {
	svc, repo := newReminderFixture()
	id := uuid.New()
	repo.On("FindEntryByID", mock.Anything, id).Return(nil, repository.ErrReminderEntryNotFound)

	_, err := svc.ToggleCompleted(context.Background(), id)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	svc, repo := newReminderFixture()
	id := uuid.New()
	repo.On("DeleteEntry", mock.Anything, id).Return(repository.ErrReminderEntryNotFound)

	err := svc.DeleteEntry(context.Background(), id)
	assert.ErrorIs(t, err, ErrReminderNotFound)
}

func TestAddAppointment(t *testing.T) {
	svc, repo := newReminderFixture()
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	appointment, err := svc.AddAppointment(context.Background(), &usecase.AddAppointmentInput{
		Doctor:         "Dr. Anjali Rao",
		Specialization: "Cardiologist",
		Location:       "Fortis Hospital, Bangalore",
		DateTime:       time.Date(2026, time.September, 3, 10, 30, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, appointment.ID)
}
