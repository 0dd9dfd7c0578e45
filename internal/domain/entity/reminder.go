package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderKind distinguishes the two alarm-carrying reminder types.
type ReminderKind string

const (
	ReminderKindMedication ReminderKind = "medication"
	ReminderKindHydration  ReminderKind = "hydration"
)

// RecurrenceType discriminates the recurrence sum type.
type RecurrenceType string

const (
	RecurrenceDaily      RecurrenceType = "daily"
	RecurrenceCustomDays RecurrenceType = "custom_days"
)

// Recurrence is the policy determining which calendar days a reminder is active.
// Days is only meaningful for RecurrenceCustomDays.
type Recurrence struct {
	Type RecurrenceType `json:"type"`
	Days []time.Weekday `json:"days,omitempty"`
}

// DailyRecurrence returns a recurrence matching every day.
func DailyRecurrence() Recurrence {
	return Recurrence{Type: RecurrenceDaily}
}

// CustomDaysRecurrence returns a recurrence matching only the given weekdays.
func CustomDaysRecurrence(days ...time.Weekday) Recurrence {
	return Recurrence{Type: RecurrenceCustomDays, Days: days}
}

// Matches reports whether the recurrence is active on the given weekday.
func (r Recurrence) Matches(day time.Weekday) bool {
	if r.Type == RecurrenceDaily {
		return true
	}
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}

	return false
}

// ReminderEntry is a recurring point-in-time notification: a medication dose
// or a hydration prompt. TimeOfDay is a 24-hour "HH:MM" string at minute
// resolution; matching against the clock is exact string equality.
type ReminderEntry struct {
	ID         uuid.UUID    `json:"id"`
	Kind       ReminderKind `json:"kind"`
	Name       string       `json:"name"`             // Medicine name, or empty for hydration.
	Dosage     string       `json:"dosage,omitempty"` // e.g. "10mg". Hydration entries carry Amount instead.
	Amount     string       `json:"amount,omitempty"` // e.g. "250ml".
	TimeOfDay  string       `json:"time_of_day"`
	Recurrence Recurrence   `json:"recurrence"`
	Completed  bool         `json:"completed"` // Done for the current occurrence.
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Clone returns a deep copy, including the custom-days set. Stores hand out
// clones so the scheduler and HTTP handlers never share a mutable entry.
func (e *ReminderEntry) Clone() *ReminderEntry {
	clone := *e
	if len(e.Recurrence.Days) > 0 {
		clone.Recurrence.Days = append([]time.Weekday(nil), e.Recurrence.Days...)
	}

	return &clone
}

// DisplayName is the human-readable label used when the entry rings.
func (e *ReminderEntry) DisplayName() string {
	if e.Kind == ReminderKindHydration {
		return e.Amount + " of water"
	}
	if e.Dosage != "" {
		return e.Name + " (" + e.Dosage + ")"
	}

	return e.Name
}

// Appointment is a stored doctor visit. Appointments are listed on the
// dashboard but do not participate in the alarm state machine.
type Appointment struct {
	ID             uuid.UUID `json:"id"`
	Doctor         string    `json:"doctor"`
	Specialization string    `json:"specialization"`
	Location       string    `json:"location"`
	DateTime       time.Time `json:"date_time"`
	CreatedAt      time.Time `json:"created_at"`
}
