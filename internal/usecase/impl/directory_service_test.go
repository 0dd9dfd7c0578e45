package impl

import (
	"context"
	"testing"

	"medi/config"
	"medi/internal/domain/entity"
	"medi/internal/mocks"
	"medi/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDirectoryFixture(t *testing.T, providers []*entity.Provider) (usecase.DirectoryUsecase, *mocks.LocationUsecase) {
	t.Helper()

	providerRepo := new(mocks.ProviderRepository)
	providerRepo.On("ListProviders", mock.Anything).Return(providers, nil)

	locationUC := new(mocks.LocationUsecase)

	svc := NewDirectoryService(DirectoryServiceParams{
		ProviderRepo: providerRepo,
		LocationUC:   locationUC,
		Config: &config.Config{
			Directory: &config.DirectoryConfig{
				DisplayCap:           3,
				SortGroupsByDistance: true,
			},
		},
	})

	return svc, locationUC
}

func testProvider(name, specialization, category, clinic string, lat, lon float64) *entity.Provider {
	return &entity.Provider{
		ID:             uuid.New(),
		Name:           name,
		Specialization: specialization,
		Category:       category,
		Clinic:         clinic,
		Latitude:       lat,
		Longitude:      lon,
	}
}

func TestListProviders_RanksByDistanceAscending(t *testing.T) {
	// Reference at the origin; latitudes chosen so distances land near
	// 500, 5 and 55 km in listed order.
	providers := []*entity.Provider{
		testProvider("Dr. Far", "Cardiologist", "Heart", "City A", 4.5, 0),
		testProvider("Dr. Near", "Cardiologist", "Heart", "City B", 0.045, 0),
		testProvider("Dr. Mid", "Cardiologist", "Heart", "City C", 0.45, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(nil)

	reference := orb.Point{0, 0}
	ranked, err := svc.ListProviders(context.Background(), &usecase.RankInput{Reference: &reference})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Dr. Near", ranked[0].Name)
	assert.Equal(t, "Dr. Mid", ranked[1].Name)
	assert.Equal(t, "Dr. Far", ranked[2].Name)
	for i := 1; i < len(ranked); i++ {
		require.NotNil(t, ranked[i].DistanceKm)
		assert.Less(t, *ranked[i-1].DistanceKm, *ranked[i].DistanceKm)
	}
}

func TestListProviders_NoReferenceKeepsOriginalOrder(t *testing.T) {
	providers := []*entity.Provider{
		testProvider("Dr. C", "Cardiologist", "Heart", "City", 4.5, 0),
		testProvider("Dr. A", "Cardiologist", "Heart", "City", 0.045, 0),
		testProvider("Dr. B", "Cardiologist", "Heart", "City", 0.45, 0),
		testProvider("Dr. D", "Cardiologist", "Heart", "City", 1.0, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(nil)

	ranked, err := svc.ListProviders(context.Background(), &usecase.RankInput{})
	require.NoError(t, err)

	// Original order survives, truncated to the display cap of 3.
	require.Len(t, ranked, 3)
	assert.Equal(t, "Dr. C", ranked[0].Name)
	assert.Equal(t, "Dr. A", ranked[1].Name)
	assert.Equal(t, "Dr. B", ranked[2].Name)
	assert.Nil(t, ranked[0].DistanceKm)
}

func TestListProviders_CityFilterIsTextualNotGeographic(t *testing.T) {
	// The Tirupati clinic is far from the reference, the Bangalore one is
	// close. The filter must keep only the textual match.
	providers := []*entity.Provider{
		testProvider("Dr. Close", "Cardiologist", "Heart", "Apollo Hospitals, Bangalore", 0.01, 0),
		testProvider("Dr. Match", "Cardiologist", "Heart", "SVIMS, Tirupati", 4.5, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(nil)

	reference := orb.Point{0, 0}
	ranked, err := svc.ListProviders(context.Background(), &usecase.RankInput{
		Reference:  &reference,
		CityFilter: "tirupati",
	})
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Dr. Match", ranked[0].Name)
}

func TestListProviders_LimitOverridesDisplayCap(t *testing.T) {
	providers := []*entity.Provider{
		testProvider("Dr. A", "Cardiologist", "Heart", "City", 0.1, 0),
		testProvider("Dr. B", "Cardiologist", "Heart", "City", 0.2, 0),
		testProvider("Dr. C", "Cardiologist", "Heart", "City", 0.3, 0),
		testProvider("Dr. D", "Cardiologist", "Heart", "City", 0.4, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(nil)

	ranked, err := svc.ListProviders(context.Background(), &usecase.RankInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestListProviders_UsesSessionReferenceWhenInputHasNone(t *testing.T) {
	providers := []*entity.Provider{
		testProvider("Dr. Far", "Cardiologist", "Heart", "City", 4.5, 0),
		testProvider("Dr. Near", "Cardiologist", "Heart", "City", 0.045, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(&entity.ReferenceLocation{
		Latitude:  0,
		Longitude: 0,
		Source:    entity.LocationSourceDevice,
	})

	ranked, err := svc.ListProviders(context.Background(), &usecase.RankInput{})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Dr. Near", ranked[0].Name)
}

func TestListGrouped_ReordersGroupsByNearestProvider(t *testing.T) {
	providers := []*entity.Provider{
		testProvider("Dr. Skin", "Dermatologist", "Skin & Hair", "City", 4.5, 0),
		testProvider("Dr. Heart", "Cardiologist", "Heart", "City", 0.045, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(nil)

	reference := orb.Point{0, 0}
	groups, err := svc.ListGrouped(context.Background(), &usecase.RankInput{Reference: &reference})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// The cardiology group holds the nearest provider and moves first.
	assert.Equal(t, "Heart", groups[0].Name)
	assert.Equal(t, "Skin & Hair", groups[1].Name)
}

func TestListGrouped_NoReferenceKeepsGroupOrder(t *testing.T) {
	providers := []*entity.Provider{
		testProvider("Dr. Skin", "Dermatologist", "Skin & Hair", "City", 4.5, 0),
		testProvider("Dr. Heart", "Cardiologist", "Heart", "City", 0.045, 0),
	}
	svc, locationUC := newDirectoryFixture(t, providers)
	locationUC.On("Current", mock.Anything).Return(nil)

	groups, err := svc.ListGrouped(context.Background(), &usecase.RankInput{})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// First-seen order, from the canonical provider list.
	assert.Equal(t, "Skin & Hair", groups[0].Name)
	assert.Equal(t, "Heart", groups[1].Name)
}

func TestRankProviders_DoesNotMutateInput(t *testing.T) {
	providers := []*entity.Provider{
		testProvider("Dr. B", "Cardiologist", "Heart", "City", 0.45, 0),
		testProvider("Dr. A", "Cardiologist", "Heart", "City", 0.045, 0),
	}

	reference := orb.Point{0, 0}
	rankProviders(providers, &reference, "", 3)

	assert.Equal(t, "Dr. B", providers[0].Name)
	assert.Nil(t, providers[0].DistanceKm)
}
