// Package geocoding implements the Geocoder interface against a
// Nominatim-compatible lookup service.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"medi/config"
	"medi/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "medi/1.0"
	defaultTimeout   = 10 * time.Second
)

type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the Nominatim client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Geocoder backed by a Nominatim-compatible service.
func New(params Params) service.Geocoder {
	baseURL := defaultBaseURL
	userAgent := defaultUserAgent
	timeout := defaultTimeout
	if cfg := params.Config.Geocoding; cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.UserAgent != "" {
			userAgent = cfg.UserAgent
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &nominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}
}

// searchResult is the subset of the Nominatim response the service reads.
// Coordinates come back as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Forward resolves a free-text place name. A lookup is a single attempt:
// failures surface immediately and are never retried.
func (c *nominatimClient) Forward(ctx context.Context, query string) (*service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, service.ErrGeocodeNoMatch
	}

	return parseResult(&results[0])
}

// Reverse resolves a coordinate to a place name.
func (c *nominatimClient) Reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("format", "json")

	var result searchResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}

	if result.DisplayName == "" {
		return "", service.ErrGeocodeNoMatch
	}

	return result.DisplayName, nil
}

func (c *nominatimClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "geocoding request failed",
			slog.String("path", path),
			slog.Any("error", err))

		return errors.Wrap(service.ErrGeocodeUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "geocoding service returned non-success status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))

		return errors.Wrapf(service.ErrGeocodeUnavailable, "status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(service.ErrGeocodeUnavailable, err.Error())
	}

	return nil
}

func parseResult(result *searchResult) (*service.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(service.ErrGeocodeUnavailable, "malformed latitude")
	}

	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(service.ErrGeocodeUnavailable, "malformed longitude")
	}

	return &service.GeocodeResult{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: result.DisplayName,
	}, nil
}
