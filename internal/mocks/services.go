package mocks

import (
	"context"

	"medi/internal/domain/entity"
	"medi/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// Geocoder is a mock implementation of service.Geocoder.
type Geocoder struct {
	mock.Mock
}

func (m *Geocoder) Forward(ctx context.Context, query string) (*service.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if result, ok := args.Get(0).(*service.GeocodeResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *Geocoder) Reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	args := m.Called(ctx, latitude, longitude)

	return args.String(0), args.Error(1)
}

// AlarmSink is a mock implementation of service.AlarmSink.
type AlarmSink struct {
	mock.Mock
}

func (m *AlarmSink) Ring(ctx context.Context, alarm *entity.ActiveAlarm) {
	m.Called(ctx, alarm)
}

func (m *AlarmSink) Silence(ctx context.Context) {
	m.Called(ctx)
}

// EventPublisher is a mock implementation of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishAlarmEvent(ctx context.Context, event *service.AlarmEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *EventPublisher) Close() error {
	return m.Called().Error(0)
}

// NotificationService is a mock implementation of service.NotificationService.
type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)
	invalid, _ := args.Get(2).([]string)

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

func (m *NotificationService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	return m.Called(ctx, token, title, body, data).Error(0)
}
