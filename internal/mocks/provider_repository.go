// Package mocks provides hand-written testify mocks for the domain
// interfaces used across service and delivery tests.
package mocks

import (
	"context"

	"medi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ProviderRepository is a mock implementation of repository.ProviderRepository.
type ProviderRepository struct {
	mock.Mock
}

func (m *ProviderRepository) ListProviders(ctx context.Context) ([]*entity.Provider, error) {
	args := m.Called(ctx)
	if providers, ok := args.Get(0).([]*entity.Provider); ok {
		return providers, args.Error(1)
	}

	return nil, args.Error(1)
}
