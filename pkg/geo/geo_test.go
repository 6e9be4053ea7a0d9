package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSamePoint(t *testing.T) {
	p := Point{Latitude: 37.5443, Longitude: -5.8275}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistanceKnownVector(t *testing.T) {
	// One degree of longitude along the equator.
	d := Distance(Point{0, 0}, Point{0, 1})
	assert.InDelta(t, 111.19, d, 0.05)
}

func TestBearingSamePoint(t *testing.T) {
	p := Point{Latitude: 40.4168, Longitude: -3.7038}
	assert.Equal(t, 0, Bearing(p, p))
}

func TestBearingKnownVector(t *testing.T) {
	b := Bearing(Point{0, 0}, Point{0, 1})
	assert.Equal(t, 90, b)
	assert.Equal(t, "Este", Cardinal(b))
}

func TestBearingNorthAndWest(t *testing.T) {
	assert.Equal(t, 0, Bearing(Point{0, 0}, Point{1, 0}))
	assert.Equal(t, 270, Bearing(Point{0, 0}, Point{0, -1}))
	assert.Equal(t, "Oeste", Cardinal(270))
}

func TestCardinalWrapsAroundNorth(t *testing.T) {
	assert.Equal(t, "Norte", Cardinal(359))
	assert.Equal(t, "Norte", Cardinal(0))
	assert.Equal(t, "Nornoroeste", Cardinal(337))
}

func TestWithinRadius(t *testing.T) {
	target := Point{Latitude: 37.5443, Longitude: -5.8275}

	// Roughly 9 meters north of the target.
	near := Point{Latitude: target.Latitude + 0.000081, Longitude: target.Longitude}
	// Roughly 11 meters north of the target.
	far := Point{Latitude: target.Latitude + 0.000099, Longitude: target.Longitude}

	assert.True(t, WithinRadius(near, target, 0.010))
	assert.False(t, WithinRadius(far, target, 0.010))
}

func TestIsFresh(t *testing.T) {
	now := time.Now()
	maxAge := 40 * time.Second

	assert.True(t, IsFresh(now.Add(-39*time.Second), now, maxAge))
	assert.False(t, IsFresh(now.Add(-50*time.Second), now, maxAge))
}
