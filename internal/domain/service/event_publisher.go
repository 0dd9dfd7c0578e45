package service

import (
	"context"
)

// AlarmEvent represents a raised alarm to be processed by the notifier
// worker. RequestID carries the trace id across the async pipeline, Kind is
// "medication" or "hydration", RaisedAt is RFC 3339, and DeviceTokens are the
// push targets when the publisher knows them.
type AlarmEvent struct {
	RequestID    string   `json:"request_id,omitempty"`
	EntryID      string   `json:"entry_id"`
	Kind         string   `json:"kind"`
	DisplayName  string   `json:"display_name"`
	TimeOfDay    string   `json:"time_of_day"`
	RaisedAt     string   `json:"raised_at"`
	DeviceTokens []string `json:"device_tokens,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlarmEvent publishes an alarm event for async delivery
	PublishAlarmEvent(ctx context.Context, event *AlarmEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
