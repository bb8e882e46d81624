package ports

import (
	"context"
	"geodistance/internal/domain"
)

// Great-circle separation between two validated coordinates.
type DistanceResult struct {
	Start          domain.Coordinates
	End            domain.Coordinates
	DistanceMeters float64
}

// Contract for computing the surface distance between two raw coordinate inputs.
type DistanceCalculator interface {
	// Validate start and end as [lat, lon] pairs and return their distance.
	// Validation failures are returned unwrapped.
	Distance(ctx context.Context, start, end any) (DistanceResult, error)
}
