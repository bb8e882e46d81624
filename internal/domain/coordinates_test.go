package domain

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCoordinatesOrdering(t *testing.T) {
	c := Coordinates{Lat: 48.8566, Lon: 2.3522}

	assert.Equal(t, []float64{48.8566, 2.3522}, c.CoordsToList())
	assert.Equal(t, orb.Point{2.3522, 48.8566}, c.Point())
	assert.Equal(t, 48.8566, c.Point().Lat())
	assert.Equal(t, "48.8566,2.3522", c.String())
}
