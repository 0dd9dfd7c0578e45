package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medi/internal/domain/constants"
	"medi/internal/domain/entity"
	"medi/internal/domain/service"
	"medi/internal/mocks"
	"medi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var locationNow = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)

func newLocationFixture() (usecase.LocationUsecase, *mocks.Geocoder) {
	geocoder := new(mocks.Geocoder)
	svc := NewLocationService(LocationServiceParams{
		Geocoder: geocoder,
		Clock:    &fakeClock{now: locationNow},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, geocoder
}

func TestReportFix_SetsReferenceWithDisplayName(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Reverse", mock.Anything, 12.9716, 77.5946).Return("Bangalore, Karnataka, India", nil)

	reference, err := svc.ReportFix(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)

	assert.Equal(t, entity.LocationSourceDevice, reference.Source)
	assert.Equal(t, "Bangalore, Karnataka, India", reference.DisplayName)
	assert.True(t, reference.ResolvedAt.Equal(locationNow))
	assert.Equal(t, reference, svc.Current(context.Background()))
}

func TestReportFix_ReverseFailureKeepsCoordinates(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).
		Return("", service.ErrGeocodeUnavailable)

	reference, err := svc.ReportFix(context.Background(), 13.0827, 80.2707)
	require.NoError(t, err)

	assert.Empty(t, reference.DisplayName)
	assert.Equal(t, 13.0827, reference.Latitude)
	require.NotNil(t, svc.Current(context.Background()))
}

func TestReportFixError_ClearsReference(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("Chennai", nil)

	_, err := svc.ReportFix(context.Background(), 13.0827, 80.2707)
	require.NoError(t, err)

	message, err := svc.ReportFixError(context.Background(), constants.FixErrorPermissionDenied)
	require.NoError(t, err)
	assert.Contains(t, message, "denied permission")
	assert.Nil(t, svc.Current(context.Background()))
}

func TestReportFixError_UnknownCode(t *testing.T) {
	svc, _ := newLocationFixture()

	_, err := svc.ReportFixError(context.Background(), "solar-flare")
	assert.ErrorIs(t, err, ErrUnknownFixError)
}

func TestResolveQuery_SetsReference(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Forward", mock.Anything, "Tirupati").Return(&service.GeocodeResult{
		Latitude:    13.6288,
		Longitude:   79.4192,
		DisplayName: "Tirupati, Andhra Pradesh, India",
	}, nil)

	reference, err := svc.ResolveQuery(context.Background(), "  Tirupati  ")
	require.NoError(t, err)

	assert.Equal(t, entity.LocationSourceQuery, reference.Source)
	assert.Equal(t, 13.6288, reference.Latitude)
	assert.True(t, reference.ResolvedAt.Equal(locationNow))
	assert.Equal(t, reference, svc.Current(context.Background()))
}

func TestResolveQuery_FailureKeepsPriorReference(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("Bangalore", nil)
	geocoder.On("Forward", mock.Anything, "atlantis").Return(nil, service.ErrGeocodeNoMatch)

	prior, err := svc.ReportFix(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)

	_, err = svc.ResolveQuery(context.Background(), "atlantis")
	assert.ErrorIs(t, err, service.ErrGeocodeNoMatch)
	assert.Equal(t, prior, svc.Current(context.Background()))
}

func TestResolveQuery_LookupErrorKeepsPriorReference(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("Bangalore", nil)
	geocoder.On("Forward", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(service.ErrGeocodeUnavailable, "dial tcp"))

	prior, err := svc.ReportFix(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)

	_, err = svc.ResolveQuery(context.Background(), "Chennai")
	require.Error(t, err)
	assert.Equal(t, prior, svc.Current(context.Background()))
}

func TestResolveQuery_EmptyQuery(t *testing.T) {
	svc, _ := newLocationFixture()

	_, err := svc.ResolveQuery(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestResolveQuery_SupersededResponseDiscarded(t *testing.T) {
	geocoder := new(mocks.Geocoder)
	svc := NewLocationService(LocationServiceParams{
		Geocoder: geocoder,
		Clock:    &fakeClock{now: locationNow},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*locationService)

	started := make(chan struct{})
	release := make(chan struct{})
	geocoder.On("Forward", mock.Anything, "Chennai").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&service.GeocodeResult{Latitude: 13.0827, Longitude: 80.2707, DisplayName: "Chennai"}, nil)
	geocoder.On("Forward", mock.Anything, "Hyderabad").
		Return(&service.GeocodeResult{Latitude: 17.3850, Longitude: 78.4867, DisplayName: "Hyderabad"}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// First query; its response arrives after the second query started.
		reference, err := svc.ResolveQuery(context.Background(), "Chennai")
		assert.NoError(t, err)
		assert.Nil(t, reference)
	}()

	// Wait until the first query is in flight, then supersede it.
	<-started

	reference, err := svc.ResolveQuery(context.Background(), "Hyderabad")
	require.NoError(t, err)
	require.NotNil(t, reference)

	close(release)
	<-done

	current := svc.Current(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, "Hyderabad", current.DisplayName)
}

func TestClear(t *testing.T) {
	svc, geocoder := newLocationFixture()
	geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return("Bangalore", nil)

	_, err := svc.ReportFix(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)

	svc.Clear(context.Background())
	assert.Nil(t, svc.Current(context.Background()))
}
