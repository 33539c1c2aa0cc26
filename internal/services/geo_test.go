package services

import (
	"delivery-fixture-generator/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoSamplerStaysWithinRadius(t *testing.T) {
	g := NewGeoSampler(testRand())
	anchor := domain.Coordinates{Lat: 52.2297, Lon: 21.0122}
	const r = 0.1

	for i := 0; i < 10000; i++ {
		p, err := g.Sample(anchor, r)
		require.NoError(t, err)

		assert.True(t, p.Valid())
		assert.GreaterOrEqual(t, p.Lat, anchor.Lat-r)
		assert.LessOrEqual(t, p.Lat, anchor.Lat+r)
		assert.GreaterOrEqual(t, p.Lon, anchor.Lon-r)
		assert.LessOrEqual(t, p.Lon, anchor.Lon+r)
	}
}

func TestGeoSamplerClampsAtTheEdges(t *testing.T) {
	g := NewGeoSampler(testRand())

	for _, anchor := range []domain.Coordinates{
		{Lat: 89.99, Lon: 179.99},
		{Lat: -89.99, Lon: -179.99},
	} {
		for i := 0; i < 1000; i++ {
			p, err := g.Sample(anchor, 5)
			require.NoError(t, err)
			require.True(t, p.Valid(), "sample %+v around %+v out of range", p, anchor)
		}
	}
}

func TestGeoSamplerRejectsBadInput(t *testing.T) {
	g := NewGeoSampler(testRand())

	_, err := g.Sample(domain.Coordinates{Lat: 52, Lon: 21}, 0)
	assert.Error(t, err)

	_, err = g.Sample(domain.Coordinates{Lat: 52, Lon: 21}, -1)
	assert.Error(t, err)

	_, err = g.Sample(domain.Coordinates{Lat: 91, Lon: 21}, 0.1)
	assert.Error(t, err)
}

func TestPostalCodeUsesPrefix(t *testing.T) {
	g := NewGeoSampler(testRand())

	for i := 0; i < 100; i++ {
		code := g.PostalCode("30")
		assert.Regexp(t, `^30-\d{3}$`, code)
		assert.NotEqual(t, "30-000", code)
	}
}
