package distance

import (
	"context"
	"geodistance/internal/platform/obs"
	"geodistance/internal/ports"
	"geodistance/internal/services"
)

// HaversineProvider implements DistanceCalculator with the spherical
// Haversine formula. It holds no mutable state and is safe for concurrent use.
type HaversineProvider struct {
	calc *services.Calculator
}

// NewHaversineProvider returns a provider for a sphere of the given radius in
// meters. A radius <= 0 selects the mean Earth radius.
func NewHaversineProvider(radius float64) *HaversineProvider {
	return &HaversineProvider{calc: services.NewCalculator(radius)}
}

func (p *HaversineProvider) Distance(
	ctx context.Context,
	start any,
	end any,
) (_ ports.DistanceResult, err error) {
	defer obs.Time(ctx, "haversine.Distance")(&err)

	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}

	from, to, err := services.ParsePair(start, end)
	if err != nil {
		return ports.DistanceResult{}, err
	}

	return ports.DistanceResult{
		Start:          from,
		End:            to,
		DistanceMeters: p.calc.Distance(from, to),
	}, nil
}
