package mocks

import (
	"context"

	"medi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ReminderRepository is a mock implementation of repository.ReminderRepository.
type ReminderRepository struct {
	mock.Mock
}

func (m *ReminderRepository) CreateEntry(ctx context.Context, entry *entity.ReminderEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *ReminderRepository) FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.ReminderEntry, error) {
	args := m.Called(ctx, id)
	if entry, ok := args.Get(0).(*entity.ReminderEntry); ok {
		return entry, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReminderRepository) ListEntries(ctx context.Context) ([]*entity.ReminderEntry, error) {
	args := m.Called(ctx)
	if entries, ok := args.Get(0).([]*entity.ReminderEntry); ok {
		return entries, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReminderRepository) UpdateEntry(ctx context.Context, entry *entity.ReminderEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *ReminderRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ReminderRepository) ResetCompleted(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *ReminderRepository) CreateAppointment(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *ReminderRepository) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	args := m.Called(ctx)
	if appointments, ok := args.Get(0).([]*entity.Appointment); ok {
		return appointments, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReminderRepository) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
