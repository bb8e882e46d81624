package domain

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lon], the order the distance calculator accepts.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lon} }

// Point returns the coordinates as an orb point, which is ordered [lon, lat].
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}
