package postgres

import (
	"context"

	"medi/internal/domain/entity"
	"medi/internal/domain/repository"
	"medi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerRepository implements repository.ProviderRepository on PostgreSQL.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

// ListProviders retrieves the full directory in canonical order.
func (repo *providerRepository) ListProviders(ctx context.Context) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Order("position ASC").
		Find(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return model.ToProviderDomainList(providerModels), nil
}
