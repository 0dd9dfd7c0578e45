package model

import (
	"time"

	"medi/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderModel is the GORM-specific struct for the 'providers' table.
// Position preserves the canonical directory order rankings fall back to
// when no reference location is set.
type ProviderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Degree         string    `gorm:"type:varchar(255)"`
	Specialization string    `gorm:"type:varchar(255);not null;index"`
	Category       string    `gorm:"type:varchar(255);not null;index"`
	Clinic         string    `gorm:"type:varchar(255);not null"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	LocationURL    string    `gorm:"type:text"`
	Position       int       `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

func toProviderDomain(m *ProviderModel) *entity.Provider {
	return &entity.Provider{
		ID:             m.ID,
		Name:           m.Name,
		Degree:         m.Degree,
		Specialization: m.Specialization,
		Category:       m.Category,
		Clinic:         m.Clinic,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		LocationURL:    m.LocationURL,
	}
}

// ToProviderDomainList converts a slice of models to domain entities.
func ToProviderDomainList(models []*ProviderModel) []*entity.Provider {
	providers := make([]*entity.Provider, 0, len(models))
	for _, m := range models {
		providers = append(providers, toProviderDomain(m))
	}

	return providers
}
