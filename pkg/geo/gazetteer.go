package geo

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var embeddedGazetteer []byte

// Location is a named place with coordinates and a coarse region bucket
type Location struct {
	Name    string   `yaml:"name"`
	Lat     float64  `yaml:"lat"`
	Lon     float64  `yaml:"lon"`
	Region  string   `yaml:"region"`
	Aliases []string `yaml:"aliases,omitempty"`
}

type gazetteerFile struct {
	Locations []Location `yaml:"locations"`
}

// Resolver resolves free-text city names to gazetteer locations and
// derives distance scores and regions from them. Lookup is by normalized
// name or alias; names the gazetteer doesn't know can optionally fall
// back to a remote geocoder, with results cached for the resolver's
// lifetime.
type Resolver struct {
	locations map[string]Location
	geocoder  *Geocoder

	// geocoded caches remote lookups, including misses (zero Location,
	// found=false), so each unknown name hits the network at most once
	geocoded map[string]geocodeResult
}

type geocodeResult struct {
	loc   Location
	found bool
}

// NewResolver builds a resolver from the embedded gazetteer.
func NewResolver() (*Resolver, error) {
	return newResolverFromBytes(embeddedGazetteer)
}

// NewResolverFromFile builds a resolver from an external gazetteer file,
// for deployments that maintain their own location list.
func NewResolverFromFile(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gazetteer file: %w", err)
	}
	return newResolverFromBytes(data)
}

func newResolverFromBytes(data []byte) (*Resolver, error) {
	var file gazetteerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse gazetteer: %w", err)
	}
	if len(file.Locations) == 0 {
		return nil, fmt.Errorf("gazetteer contains no locations")
	}

	locations := make(map[string]Location)
	for _, loc := range file.Locations {
		locations[NormalizeCityName(loc.Name)] = loc
		for _, alias := range loc.Aliases {
			locations[NormalizeCityName(alias)] = loc
		}
	}

	return &Resolver{
		locations: locations,
		geocoded:  make(map[string]geocodeResult),
	}, nil
}

// WithGeocoder enables a remote geocoding fallback for names the
// gazetteer can't resolve.
func (r *Resolver) WithGeocoder(g *Geocoder) *Resolver {
	r.geocoder = g
	return r
}

// Lookup resolves a city name to a location. The second return value is
// false when the name can't be resolved by gazetteer or fallback.
func (r *Resolver) Lookup(city string) (Location, bool) {
	key := NormalizeCityName(city)
	if key == "" {
		return Location{}, false
	}

	if loc, ok := r.locations[key]; ok {
		return loc, true
	}

	if r.geocoder == nil {
		return Location{}, false
	}

	if cached, ok := r.geocoded[key]; ok {
		return cached.loc, cached.found
	}

	loc, err := r.geocoder.Geocode(city)
	if err != nil {
		// Remote failures degrade to "unresolved"; the miss is cached so
		// a flaky geocoder can't stall a whole run
		r.geocoded[key] = geocodeResult{}
		return Location{}, false
	}

	r.geocoded[key] = geocodeResult{loc: loc, found: true}
	return loc, true
}

// DistanceScore returns the 0-100 step-function score for two city names.
// Either city unresolved yields the neutral score of 50.
func (r *Resolver) DistanceScore(cityA, cityB string) int {
	locA, okA := r.Lookup(cityA)
	locB, okB := r.Lookup(cityB)
	if !okA || !okB {
		return NeutralScore
	}

	km := HaversineKm(locA.Lat, locA.Lon, locB.Lat, locB.Lon)
	return StepScore(km)
}

// Region returns the coarse region bucket for a city, or "" if unresolved.
func (r *Resolver) Region(city string) string {
	loc, ok := r.Lookup(city)
	if !ok {
		return ""
	}
	return loc.Region
}

// NormalizeCityName canonicalizes a free-text city name for lookup:
// trims, lowercases, collapses whitespace and strips punctuation that
// commonly varies between spellings ("Tel-Aviv" vs "Tel Aviv").
func NormalizeCityName(city string) string {
	s := strings.ToLower(strings.TrimSpace(city))
	s = strings.Map(func(c rune) rune {
		switch c {
		case '-', '\'', '’', '"', '.', ',':
			return ' '
		}
		return c
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
