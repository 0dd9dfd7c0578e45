package impl

import (
	"context"
	"math"
	"sort"
	"strings"

	"medi/config"
	"medi/internal/domain/entity"
	"medi/internal/domain/geo"
	"medi/internal/domain/repository"
	"medi/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type directoryService struct {
	providerRepo repository.ProviderRepository
	locationUC   usecase.LocationUsecase
	config       *config.Config
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	LocationUC   usecase.LocationUsecase
	Config       *config.Config
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		providerRepo: params.ProviderRepo,
		locationUC:   params.LocationUC,
		config:       params.Config,
	}
}

// ListProviders returns a flat ranked provider list.
func (s *directoryService) ListProviders(ctx context.Context, input *usecase.RankInput) ([]*entity.Provider, error) {
	providers, err := s.providerRepo.ListProviders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	reference, cityFilter, limit := s.resolveQuery(ctx, input)

	return rankProviders(providers, reference, cityFilter, limit), nil
}

// ListGrouped returns the category > specialization > provider view.
func (s *directoryService) ListGrouped(ctx context.Context, input *usecase.RankInput) ([]*entity.CategoryGroup, error) {
	providers, err := s.providerRepo.ListProviders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	reference, cityFilter, limit := s.resolveQuery(ctx, input)

	categories := groupProviders(providers)
	for _, category := range categories {
		for _, spec := range category.Specializations {
			spec.Providers = rankProviders(spec.Providers, reference, cityFilter, limit)
		}
	}

	if reference != nil && s.config.Directory.SortGroupsByDistance {
		sortGroupsByNearest(categories)
	}

	return categories, nil
}

// resolveQuery merges the request input with session state and configuration.
func (s *directoryService) resolveQuery(ctx context.Context, input *usecase.RankInput) (*orb.Point, string, int) {
	limit := s.config.Directory.DisplayCap
	if input == nil {
		if ref := s.locationUC.Current(ctx); ref != nil {
			point := ref.Point()

			return &point, "", limit
		}

		return nil, "", limit
	}

	if input.Limit > 0 {
		limit = input.Limit
	}

	reference := input.Reference
	if reference == nil {
		if ref := s.locationUC.Current(ctx); ref != nil {
			point := ref.Point()
			reference = &point
		}
	}

	return reference, input.CityFilter, limit
}

// rankProviders converts a provider list into a location-ordered and
// optionally location-filtered view.
//
// Without a reference the original order is kept, truncated to the display
// cap. With a reference every provider gets a distance, the city filter (a
// case-insensitive substring match on the free-text clinic field, not a
// geographic radius) prunes the list, and the survivors are sorted nearest
// first before truncation.
func rankProviders(providers []*entity.Provider, reference *orb.Point, cityFilter string, limit int) []*entity.Provider {
	if reference == nil {
		return truncate(cloneProviders(providers), limit)
	}

	ranked := make([]*entity.Provider, 0, len(providers))
	needle := strings.ToLower(cityFilter)
	for _, p := range providers {
		if needle != "" && !strings.Contains(strings.ToLower(p.Clinic), needle) {
			continue
		}

		clone := *p
		distance := geo.DistanceKm(*reference, p.Point())
		clone.DistanceKm = &distance
		ranked = append(ranked, &clone)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].DistanceKm < *ranked[j].DistanceKm
	})

	return truncate(ranked, limit)
}

// groupProviders rebuilds the category > specialization hierarchy from the
// flat canonical-order list.
func groupProviders(providers []*entity.Provider) []*entity.CategoryGroup {
	var categories []*entity.CategoryGroup
	categoryIndex := make(map[string]*entity.CategoryGroup)
	specIndex := make(map[string]*entity.SpecializationGroup)

	for _, p := range providers {
		category, ok := categoryIndex[p.Category]
		if !ok {
			category = &entity.CategoryGroup{Name: p.Category}
			categoryIndex[p.Category] = category
			categories = append(categories, category)
		}

		specKey := p.Category + "\x00" + p.Specialization
		spec, ok := specIndex[specKey]
		if !ok {
			spec = &entity.SpecializationGroup{Name: p.Specialization}
			specIndex[specKey] = spec
			category.Specializations = append(category.Specializations, spec)
		}

		spec.Providers = append(spec.Providers, p)
	}

	return categories
}

// sortGroupsByNearest reorders specializations within each category, and the
// categories themselves, by the minimum distance among surviving providers.
// Groups left empty by filtering sink to the end.
func sortGroupsByNearest(categories []*entity.CategoryGroup) {
	for _, category := range categories {
		sort.SliceStable(category.Specializations, func(i, j int) bool {
			return nearestDistance(category.Specializations[i]) < nearestDistance(category.Specializations[j])
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return nearestCategoryDistance(categories[i]) < nearestCategoryDistance(categories[j])
	})
}

func nearestDistance(spec *entity.SpecializationGroup) float64 {
	// Providers are already sorted ascending, so the first carries the minimum.
	if len(spec.Providers) == 0 || spec.Providers[0].DistanceKm == nil {
		return math.MaxFloat64
	}

	return *spec.Providers[0].DistanceKm
}

func nearestCategoryDistance(category *entity.CategoryGroup) float64 {
	nearest := math.MaxFloat64
	for _, spec := range category.Specializations {
		if d := nearestDistance(spec); d < nearest {
			nearest = d
		}
	}

	return nearest
}

func cloneProviders(providers []*entity.Provider) []*entity.Provider {
	cloned := make([]*entity.Provider, len(providers))
	for i, p := range providers {
		clone := *p
		cloned[i] = &clone
	}

	return cloned
}

func truncate(providers []*entity.Provider, limit int) []*entity.Provider {
	if limit > 0 && len(providers) > limit {
		return providers[:limit]
	}

	return providers
}
