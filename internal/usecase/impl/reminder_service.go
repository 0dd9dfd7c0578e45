package impl

import (
	"context"
	"regexp"
	"strings"

	"medi/internal/domain/entity"
	"medi/internal/domain/repository"
	"medi/internal/domain/service"
	"medi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrReminderNotFound is returned when a reminder entry is not found
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrAppointmentNotFound is returned when an appointment is not found
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrNameRequired is returned when the medication name is empty
	ErrNameRequired = errors.New("medication name is required")
	// ErrDosageRequired is returned when the dosage is empty
	ErrDosageRequired = errors.New("dosage is required")
	// ErrAmountRequired is returned when the hydration amount is empty
	ErrAmountRequired = errors.New("amount is required")
	// ErrInvalidTimeOfDay is returned when the time is not HH:MM
	ErrInvalidTimeOfDay = errors.New("invalid time format (HH:MM)")
	// ErrEmptyCustomDays is returned when a custom recurrence selects no weekday
	ErrEmptyCustomDays = errors.New("at least one day must be selected")
)

// timeOfDayPattern accepts 24-hour HH:MM at minute resolution.
var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	clock        service.Clock
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	Clock        service.Clock
}

// NewReminderService creates a new reminder service instance
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: params.ReminderRepo,
		clock:        params.Clock,
	}
}

// AddMedication validates and persists a medication reminder.
func (s *reminderService) AddMedication(ctx context.Context, input *usecase.AddMedicationInput) (*entity.ReminderEntry, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(input.Dosage) == "" {
		return nil, ErrDosageRequired
	}
	if err := validateSchedule(input.TimeOfDay, input.Recurrence); err != nil {
		return nil, err
	}

	entry := &entity.ReminderEntry{
		ID:         uuid.New(),
		Kind:       entity.ReminderKindMedication,
		Name:       input.Name,
		Dosage:     input.Dosage,
		TimeOfDay:  normalizeTimeOfDay(input.TimeOfDay),
		Recurrence: normalizeRecurrence(input.Recurrence),
		CreatedAt:  s.clock.Now(),
		UpdatedAt:  s.clock.Now(),
	}

	if err := s.reminderRepo.CreateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder entry")
	}

	return entry, nil
}

// AddHydration validates and persists a hydration reminder.
func (s *reminderService) AddHydration(ctx context.Context, input *usecase.AddHydrationInput) (*entity.ReminderEntry, error) {
	if strings.TrimSpace(input.Amount) == "" {
		return nil, ErrAmountRequired
	}
	if err := validateSchedule(input.TimeOfDay, input.Recurrence); err != nil {
		return nil, err
	}

	entry := &entity.ReminderEntry{
		ID:         uuid.New(),
		Kind:       entity.ReminderKindHydration,
		Amount:     input.Amount,
		TimeOfDay:  normalizeTimeOfDay(input.TimeOfDay),
		Recurrence: normalizeRecurrence(input.Recurrence),
		CreatedAt:  s.clock.Now(),
		UpdatedAt:  s.clock.Now(),
	}

	if err := s.reminderRepo.CreateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder entry")
	}

	return entry, nil
}

// AddAppointment persists an appointment. Appointments never ring.
func (s *reminderService) AddAppointment(ctx context.Context, input *usecase.AddAppointmentInput) (*entity.Appointment, error) {
	if strings.TrimSpace(input.Doctor) == "" {
		return nil, errors.New("doctor name is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, errors.New("location is required")
	}
	if input.DateTime.IsZero() {
		return nil, errors.New("date and time are required")
	}

	appointment := &entity.Appointment{
		ID:             uuid.New(),
		Doctor:         input.Doctor,
		Specialization: input.Specialization,
		Location:       input.Location,
		DateTime:       input.DateTime,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.reminderRepo.CreateAppointment(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to create appointment")
	}

	return appointment, nil
}

// List returns all reminders and appointments.
func (s *reminderService) List(ctx context.Context) (*usecase.ReminderLists, error) {
	entries, err := s.reminderRepo.ListEntries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminder entries")
	}

	appointments, err := s.reminderRepo.ListAppointments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	lists := &usecase.ReminderLists{
		Medications:  []*entity.ReminderEntry{},
		Hydration:    []*entity.ReminderEntry{},
		Appointments: appointments,
	}
	for _, entry := range entries {
		if entry.Kind == entity.ReminderKindMedication {
			lists.Medications = append(lists.Medications, entry)
		} else {
			lists.Hydration = append(lists.Hydration, entry)
		}
	}

	return lists, nil
}

// ToggleCompleted flips an entry's completed flag for the current occurrence.
func (s *reminderService) ToggleCompleted(ctx context.Context, id uuid.UUID) (*entity.ReminderEntry, error) {
	entry, err := s.reminderRepo.FindEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReminderEntryNotFound) {
			return nil, ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder entry")
	}

	entry.Completed = !entry.Completed
	entry.UpdatedAt = s.clock.Now()

	if err := s.reminderRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update reminder entry")
	}

	return entry, nil
}

// DeleteEntry removes a medication or hydration reminder.
func (s *reminderService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.reminderRepo.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReminderEntryNotFound) {
			return ErrReminderNotFound
		}

		return errors.Wrap(err, "failed to delete reminder entry")
	}

	return nil
}

// DeleteAppointment removes an appointment.
func (s *reminderService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.reminderRepo.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}

		return errors.Wrap(err, "failed to delete appointment")
	}

	return nil
}

// validateSchedule rejects input the scheduler must never see.
func validateSchedule(timeOfDay string, recurrence entity.Recurrence) error {
	if !timeOfDayPattern.MatchString(strings.TrimSpace(timeOfDay)) {
		return ErrInvalidTimeOfDay
	}
	if recurrence.Type == entity.RecurrenceCustomDays && len(recurrence.Days) == 0 {
		return ErrEmptyCustomDays
	}

	return nil
}

// normalizeTimeOfDay pads single-digit hours so clock matching can use plain
// string equality ("8:00" and "08:00" are the same minute).
func normalizeTimeOfDay(timeOfDay string) string {
	trimmed := strings.TrimSpace(timeOfDay)
	if len(trimmed) == len("H:MM") {
		return "0" + trimmed
	}

	return trimmed
}

// normalizeRecurrence defaults an unset recurrence to daily.
func normalizeRecurrence(recurrence entity.Recurrence) entity.Recurrence {
	if recurrence.Type == "" {
		return entity.DailyRecurrence()
	}

	return recurrence
}
