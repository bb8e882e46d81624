package services

import (
	"geodistance/internal/domain"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used as the sphere radius.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between start and end,
// each a [latitude, longitude] pair in decimal degrees.
//
// Both arguments are shape-checked before either is type-checked, so a
// malformed end wins over a non-numeric start. Out-of-range degrees are not
// rejected; they produce whatever the formula yields.
func Distance(start, end any) (float64, error) {
	from, to, err := ParsePair(start, end)
	if err != nil {
		return 0, err
	}

	return Haversine(from, to), nil
}

// ParsePair validates both arguments of a distance call: shape for both
// first, then numeric content for both.
func ParsePair(start, end any) (domain.Coordinates, domain.Coordinates, error) {
	if _, ok := asPair(start); !ok {
		return domain.Coordinates{}, domain.Coordinates{}, ErrInvalidShape
	}
	if _, ok := asPair(end); !ok {
		return domain.Coordinates{}, domain.Coordinates{}, ErrInvalidShape
	}

	from, err := CoordinatesFrom(start)
	if err != nil {
		return domain.Coordinates{}, domain.Coordinates{}, err
	}
	to, err := CoordinatesFrom(end)
	if err != nil {
		return domain.Coordinates{}, domain.Coordinates{}, err
	}

	return from, to, nil
}

// Haversine computes the great-circle distance in meters on a sphere of
// EarthRadiusMeters. Identical coordinates return exactly 0.
func Haversine(start, end domain.Coordinates) float64 {
	return haversine(start, end, EarthRadiusMeters)
}

// Calculator computes Haversine distances on a sphere of a chosen radius.
// The zero value uses EarthRadiusMeters and is safe for concurrent use.
type Calculator struct {
	Radius float64
}

// NewCalculator returns a Calculator for radius meters; radius <= 0 means EarthRadiusMeters.
func NewCalculator(radius float64) *Calculator {
	return &Calculator{Radius: radius}
}

func (c *Calculator) radius() float64 {
	if c == nil || c.Radius <= 0 {
		return EarthRadiusMeters
	}
	return c.Radius
}

// Distance computes the great-circle distance in meters between two coordinates.
func (c *Calculator) Distance(start, end domain.Coordinates) float64 {
	return haversine(start, end, c.radius())
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func haversine(start, end domain.Coordinates, radius float64) float64 {
	lat1Rad := toRadians(start.Lat)
	lat2Rad := toRadians(end.Lat)
	deltaLat := toRadians(end.Lat - start.Lat)
	deltaLon := toRadians(end.Lon - start.Lon)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	// Rounding can push a just past 1 for near-antipodal points.
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}
