package services

import (
	"delivery-fixture-generator/internal/domain"
	"fmt"
	"math"
	"math/rand/v2"
)

// GeoSampler places points around an anchor using a flat-degree approximation.
// No clustering and no geodesic correction; good enough for fixtures.
type GeoSampler struct {
	rng *rand.Rand
}

func NewGeoSampler(rng *rand.Rand) *GeoSampler {
	return &GeoSampler{rng: rng}
}

// Sample draws latitude and longitude independently and uniformly from
// [lat-r, lat+r] and [lon-r, lon+r]. Each interval is intersected with the
// valid coordinate range first, so the result is always a valid coordinate.
func (g *GeoSampler) Sample(anchor domain.Coordinates, radius float64) (domain.Coordinates, error) {
	if !(radius > 0 && radius <= 90) {
		return domain.Coordinates{}, fmt.Errorf("sample coordinates: radius %v out of (0, 90]", radius)
	}
	if !anchor.Valid() {
		return domain.Coordinates{}, fmt.Errorf("sample coordinates: anchor out of range: %+v", anchor)
	}

	return domain.Coordinates{
		Lat: g.uniform(math.Max(anchor.Lat-radius, -90), math.Min(anchor.Lat+radius, 90)),
		Lon: g.uniform(math.Max(anchor.Lon-radius, -180), math.Min(anchor.Lon+radius, 180)),
	}, nil
}

func (g *GeoSampler) uniform(lo, hi float64) float64 {
	return math.Min(lo+g.rng.Float64()*(hi-lo), hi)
}

// PostalCode renders "<prefix>-NNN" with a random three digit suffix.
func (g *GeoSampler) PostalCode(prefix string) string {
	return fmt.Sprintf("%s-%03d", prefix, 1+g.rng.IntN(999))
}
