package entity

import "github.com/google/uuid"

// ActiveAlarm is the transient singleton raised when a reminder entry is due.
// At most one exists at any time; a new due reminder is not raised while one
// is active.
type ActiveAlarm struct {
	EntryID     uuid.UUID    `json:"entry_id"`
	Kind        ReminderKind `json:"kind"`
	DisplayName string       `json:"display_name"`
}
