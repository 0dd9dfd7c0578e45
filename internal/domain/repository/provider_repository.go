// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"medi/internal/domain/entity"
	"medi/internal/errors"
)

// ErrProviderNotFound is returned when a provider is not found.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines read access to the provider directory.
// Providers are static reference data; nothing creates or destroys them at
// runtime, so the interface is read-only.
type ProviderRepository interface {
	// ListProviders retrieves the full directory in its canonical order
	// (category, then specialization, then insertion order).
	ListProviders(ctx context.Context) ([]*entity.Provider, error)
}
