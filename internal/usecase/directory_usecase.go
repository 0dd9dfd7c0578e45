package usecase

import (
	"context"

	"medi/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RankInput narrows a directory query.
type RankInput struct {
	// Reference is the point distances are computed against. Nil means no
	// location mode: providers keep their original order.
	Reference *orb.Point

	// CityFilter keeps only providers whose clinic field contains it as a
	// case-insensitive substring. Textual, not a geographic radius.
	CityFilter string

	// Limit overrides the configured display cap when positive.
	Limit int
}

// DirectoryUsecase defines the interface for provider directory use cases
type DirectoryUsecase interface {
	// ListGrouped returns the category > specialization > provider view,
	// ranked against the current reference location when one is set.
	ListGrouped(ctx context.Context, input *RankInput) ([]*entity.CategoryGroup, error)

	// ListProviders returns a flat ranked provider list.
	ListProviders(ctx context.Context, input *RankInput) ([]*entity.Provider, error)
}
