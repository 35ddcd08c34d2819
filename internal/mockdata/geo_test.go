package mockdata

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	// Lagos to Abuja is roughly 536 km
	lagos := Coordinates{Lat: 6.5244, Lng: 3.3792}
	abuja := Coordinates{Lat: 9.0765, Lng: 7.3986}

	d := DistanceMeters(lagos, abuja)
	assert.InDelta(t, 536000, d, 15000)

	assert.Zero(t, DistanceMeters(lagos, lagos))
}

func TestWithinRadius(t *testing.T) {
	center := Coordinates{Lat: 6.5244, Lng: 3.3792}

	// Roughly 110 m north
	near := Coordinates{Lat: center.Lat + 0.001, Lng: center.Lng}
	assert.True(t, WithinRadius(near, center, 200))
	assert.False(t, WithinRadius(near, center, 50))
}

func TestJitterAroundStaysBounded(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	// A reference near the box edge must still clamp inside it
	edge := Coordinates{Lat: MinLatitude + 0.01, Lng: MinLongitude + 0.01}
	for i := 0; i < 500; i++ {
		p := jitterAround(r, edge)
		assert.True(t, InsideBounds(p))
	}
}
