package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"medi/internal/domain/constants"
	"medi/internal/domain/entity"
	"medi/internal/domain/service"
	"medi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrEmptyQuery is returned when a location query is blank.
	ErrEmptyQuery = errors.New("location query is empty")
	// ErrUnknownFixError is returned for an unrecognized fix error class.
	ErrUnknownFixError = errors.New("unknown geolocation fix error")
)

// fixErrorMessages maps the client-reported fix error classes to the
// user-facing messages returned alongside the cleared reference state.
var fixErrorMessages = map[string]string{
	constants.FixErrorUnsupported:         "Geolocation is not supported by your device.",
	constants.FixErrorPermissionDenied:    "You denied permission to access your location. Please enable location permissions to use this feature.",
	constants.FixErrorPositionUnavailable: "Your location information is currently unavailable. Please ensure your device's location service is enabled and try again.",
	constants.FixErrorTimeout:             "The request to get your location timed out. Please check your network connection and try again.",
}

type locationService struct {
	geocoder service.Geocoder
	clock    service.Clock
	logger   *slog.Logger

	mu         sync.Mutex
	reference  *entity.ReferenceLocation
	generation uint64 // Bumped per ResolveQuery; stale responses are discarded.
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		geocoder: params.Geocoder,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

// Current returns the active reference location, or nil when none is set.
func (s *locationService) Current(_ context.Context) *entity.ReferenceLocation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reference
}

// ReportFix installs a device geolocation fix as the reference location.
// The reverse lookup for a display name is best-effort: a failure there
// never invalidates the fix itself.
func (s *locationService) ReportFix(ctx context.Context, latitude, longitude float64) (*entity.ReferenceLocation, error) {
	reference := &entity.ReferenceLocation{
		Latitude:   latitude,
		Longitude:  longitude,
		Source:     entity.LocationSourceDevice,
		ResolvedAt: s.clock.Now(),
	}

	displayName, err := s.geocoder.Reverse(ctx, latitude, longitude)
	if err != nil {
		s.logger.WarnContext(ctx, "reverse geocode failed, keeping coordinate-only fix",
			slog.Float64("latitude", latitude),
			slog.Float64("longitude", longitude),
			slog.Any("error", err))
	} else {
		reference.DisplayName = displayName
	}

	s.mu.Lock()
	s.reference = reference
	s.mu.Unlock()

	return reference, nil
}

// ReportFixError records a device geolocation failure. The reference is
// cleared so ranking falls back to the unranked directory view.
func (s *locationService) ReportFixError(ctx context.Context, code string) (string, error) {
	message, ok := fixErrorMessages[code]
	if !ok {
		return "", ErrUnknownFixError
	}

	s.mu.Lock()
	s.reference = nil
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "device geolocation failed, reference cleared",
		slog.String("code", code))

	return message, nil
}

// ResolveQuery forward-geocodes a free-text place name. On failure the prior
// reference survives untouched. Concurrent queries race by generation: only
// the response to the latest query is applied.
func (s *locationService) ResolveQuery(ctx context.Context, query string) (*entity.ReferenceLocation, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, ErrEmptyQuery
	}

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	result, err := s.geocoder.Forward(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	reference := &entity.ReferenceLocation{
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		DisplayName: result.DisplayName,
		Source:      entity.LocationSourceQuery,
		ResolvedAt:  s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		s.logger.DebugContext(ctx, "discarding superseded geocode response",
			slog.String("query", trimmed))

		return nil, nil
	}
	s.reference = reference

	return reference, nil
}

// Clear removes the reference location.
func (s *locationService) Clear(_ context.Context) {
	s.mu.Lock()
	s.reference = nil
	s.mu.Unlock()
}
