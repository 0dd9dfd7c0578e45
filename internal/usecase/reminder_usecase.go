package usecase

import (
	"context"
	"time"

	"medi/internal/domain/entity"

	"github.com/google/uuid"
)

// AddMedicationInput represents the input for adding a medication reminder
type AddMedicationInput struct {
	Name       string            `json:"name"`
	Dosage     string            `json:"dosage"`
	TimeOfDay  string            `json:"time_of_day"`
	Recurrence entity.Recurrence `json:"recurrence"`
}

// AddHydrationInput represents the input for adding a hydration reminder
type AddHydrationInput struct {
	Amount     string            `json:"amount"`
	TimeOfDay  string            `json:"time_of_day"`
	Recurrence entity.Recurrence `json:"recurrence"`
}

// AddAppointmentInput represents the input for adding an appointment
type AddAppointmentInput struct {
	Doctor         string    `json:"doctor"`
	Specialization string    `json:"specialization"`
	Location       string    `json:"location"`
	DateTime       time.Time `json:"date_time"`
}

// ReminderLists bundles the dashboard's three tabs.
type ReminderLists struct {
	Medications  []*entity.ReminderEntry `json:"medications"`
	Hydration    []*entity.ReminderEntry `json:"hydration"`
	Appointments []*entity.Appointment   `json:"appointments"`
}

// ReminderUsecase defines the interface for reminder management use cases
type ReminderUsecase interface {
	AddMedication(ctx context.Context, input *AddMedicationInput) (*entity.ReminderEntry, error)
	AddHydration(ctx context.Context, input *AddHydrationInput) (*entity.ReminderEntry, error)
	AddAppointment(ctx context.Context, input *AddAppointmentInput) (*entity.Appointment, error)

	// List returns all reminders and appointments.
	List(ctx context.Context) (*ReminderLists, error)

	// ToggleCompleted flips an entry's completed flag for the current occurrence.
	ToggleCompleted(ctx context.Context, id uuid.UUID) (*entity.ReminderEntry, error)

	// DeleteEntry removes a medication or hydration reminder.
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// DeleteAppointment removes an appointment.
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}
