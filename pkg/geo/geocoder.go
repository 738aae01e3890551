package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder looks up coordinates for city names the gazetteer doesn't
// know, using a Nominatim-compatible search endpoint. It is an optional
// fallback: deployments that only see gazetteer cities never construct
// one.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
	ctx        context.Context
}

// NewGeocoder creates a geocoder against a Nominatim-compatible endpoint
func NewGeocoder(ctx context.Context, baseURL string) *Geocoder {
	return &Geocoder{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		ctx: ctx,
	}
}

// nominatimResult is the subset of the search response we consume
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text place name to a Location.
// Remote results carry no region bucket; region stays empty, which the
// scoring layer treats as "no region match".
func (g *Geocoder) Geocode(city string) (Location, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("countrycodes", "il")

	reqURL := fmt.Sprintf("%s/search?%s", g.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(g.ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Location{}, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "matchmaker-geocoder")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(results) == 0 {
		return Location{}, fmt.Errorf("no geocode results for %q", city)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("invalid latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("invalid longitude in geocode response: %w", err)
	}

	return Location{
		Name: city,
		Lat:  lat,
		Lon:  lon,
	}, nil
}
