package mocks

import (
	"context"

	"medi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// LocationUsecase is a mock implementation of usecase.LocationUsecase.
type LocationUsecase struct {
	mock.Mock
}

func (m *LocationUsecase) Current(ctx context.Context) *entity.ReferenceLocation {
	args := m.Called(ctx)
	if reference, ok := args.Get(0).(*entity.ReferenceLocation); ok {
		return reference
	}

	return nil
}

func (m *LocationUsecase) ReportFix(ctx context.Context, latitude, longitude float64) (*entity.ReferenceLocation, error) {
	args := m.Called(ctx, latitude, longitude)
	if reference, ok := args.Get(0).(*entity.ReferenceLocation); ok {
		return reference, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *LocationUsecase) ReportFixError(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)

	return args.String(0), args.Error(1)
}

func (m *LocationUsecase) ResolveQuery(ctx context.Context, query string) (*entity.ReferenceLocation, error) {
	args := m.Called(ctx, query)
	if reference, ok := args.Get(0).(*entity.ReferenceLocation); ok {
		return reference, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *LocationUsecase) Clear(ctx context.Context) {
	m.Called(ctx)
}
