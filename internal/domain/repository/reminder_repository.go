package repository

import (
	"context"

	"medi/internal/domain/entity"
	"medi/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderEntryNotFound is returned when a reminder entry is not found.
	ErrReminderEntryNotFound = errors.New("reminder entry not found")
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ReminderRepository defines storage for reminder entries and appointments.
// Reminder state is session-scoped: the scheduler evaluates entries in the
// order ListEntries returns them (medications before hydration, then
// insertion order), so implementations must keep that order stable.
type ReminderRepository interface {
	// CreateEntry persists a new reminder entry.
	CreateEntry(ctx context.Context, entry *entity.ReminderEntry) error

	// FindEntryByID retrieves a reminder entry by its unique ID.
	FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.ReminderEntry, error)

	// ListEntries retrieves all reminder entries, medication entries first.
	ListEntries(ctx context.Context) ([]*entity.ReminderEntry, error)

	// UpdateEntry updates an existing reminder entry.
	UpdateEntry(ctx context.Context, entry *entity.ReminderEntry) error

	// DeleteEntry removes a reminder entry by its ID.
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// ResetCompleted clears the completed flag on every entry. Called at the
	// occurrence-reset boundary (midnight rollover).
	ResetCompleted(ctx context.Context) error

	// CreateAppointment persists a new appointment.
	CreateAppointment(ctx context.Context, appointment *entity.Appointment) error

	// ListAppointments retrieves all appointments ordered by date.
	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)

	// DeleteAppointment removes an appointment by its ID.
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}
