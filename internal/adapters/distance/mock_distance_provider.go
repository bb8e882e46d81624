package distance

import (
	"context"
	"fmt"
	"geodistance/internal/domain"
	"geodistance/internal/ports"
	"geodistance/internal/services"
)

type MockPair struct {
	From, To domain.Coordinates
	Meters   float64
}

// MockDistanceProvider returns canned distances for known coordinate pairs.
// Inputs are still validated, so error paths behave like the real provider.
type MockDistanceProvider struct {
	m map[string]float64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From.String()+"|"+p.To.String()] = p.Meters
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(ctx context.Context, start, end any) (ports.DistanceResult, error) {
	from, to, err := services.ParsePair(start, end)
	if err != nil {
		return ports.DistanceResult{}, err
	}

	meters, ok := p.m[from.String()+"|"+to.String()]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q", from, to)
	}

	return ports.DistanceResult{Start: from, End: to, DistanceMeters: meters}, nil
}
