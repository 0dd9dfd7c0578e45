package usecase

import (
	"context"

	"medi/internal/domain/entity"
)

// LocationUsecase manages the session's reference location: the point the
// directory is ranked against. State is memory-resident and single-writer.
type LocationUsecase interface {
	// Current returns the active reference location, or nil when none is set.
	Current(ctx context.Context) *entity.ReferenceLocation

	// ReportFix applies a device geolocation fix as the reference location
	// and reverse-geocodes a display name for it on a best-effort basis.
	ReportFix(ctx context.Context, latitude, longitude float64) (*entity.ReferenceLocation, error)

	// ReportFixError records a device geolocation failure. Any partial
	// reference state is cleared so a stale reference never survives.
	// Returns the user-facing message for the error class.
	ReportFixError(ctx context.Context, code string) (string, error)

	// ResolveQuery forward-geocodes a free-text place name and, on success,
	// installs it as the reference location. On no-match or lookup failure
	// the prior reference state is left untouched. Superseded lookups are
	// discarded: only the response to the latest query is ever applied.
	ResolveQuery(ctx context.Context, query string) (*entity.ReferenceLocation, error)

	// Clear removes the reference location (nearby mode switched off).
	Clear(ctx context.Context)
}
