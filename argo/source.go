package argo

import (
	"context"
	"errors"
	"fmt"
)

// Source provides point observations from an oceanographic archive.
type Source interface {
	// QueryRegion returns every point observation inside the query
	// envelope, in the service's own iteration order.
	QueryRegion(ctx context.Context, q RegionQuery) (PointSet, error)

	// PointsToProfiles groups a point set into per-cast profiles,
	// preserving the order casts first appear in the set. GetProfile's
	// selection depends on that order.
	PointsToProfiles(points PointSet) ([]Profile, error)
}

// ErrNoQualifyingProfile reports that no cast in the queried envelope
// carried enough pressure samples.
var ErrNoQualifyingProfile = errors.New("no qualifying profile")

// GetProfile fetches point observations for the query envelope and returns
// the first cast, in source order, whose count of present pressure samples
// is at least half the queried maximum pressure bound.
//
// Source failures are wrapped and returned without retrying, so their
// identity survives errors.Is. Cancellation and deadlines arrive through
// ctx and surface as the source's transport reports them. When every cast
// falls short of the threshold the error wraps ErrNoQualifyingProfile.
func GetProfile(ctx context.Context, src Source, q RegionQuery) (Profile, error) {
	q = q.WithDefaults()
	if err := q.Validate(); err != nil {
		return Profile{}, err
	}

	points, err := src.QueryRegion(ctx, q)
	if err != nil {
		return Profile{}, fmt.Errorf("query region: %w", err)
	}

	profiles, err := src.PointsToProfiles(points)
	if err != nil {
		return Profile{}, fmt.Errorf("group points into profiles: %w", err)
	}

	threshold := q.MaxPressure / 2
	for _, p := range profiles {
		if float64(p.PresentPressureSamples()) >= threshold {
			return p, nil
		}
	}

	return Profile{}, fmt.Errorf("%w: none of %d casts has %g or more present pressure samples",
		ErrNoQualifyingProfile, len(profiles), threshold)
}
