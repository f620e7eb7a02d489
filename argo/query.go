package argo

import (
	"fmt"
	"time"
)

// DefaultMaxPressure is the deepest pressure bound applied when a query
// does not set one, in dbar.
const DefaultMaxPressure = 2000.0

// BoundingBox is a rectangular geographic query region in degrees.
type BoundingBox struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

// Validate checks the box ordering invariants.
func (b BoundingBox) Validate() error {
	if b.MinLon >= b.MaxLon {
		return fmt.Errorf("bounding box: min longitude %g must be less than max longitude %g", b.MinLon, b.MaxLon)
	}
	if b.MinLat >= b.MaxLat {
		return fmt.Errorf("bounding box: min latitude %g must be less than max latitude %g", b.MinLat, b.MaxLat)
	}
	return nil
}

// RegionQuery selects point observations by region, time window, and
// pressure band.
type RegionQuery struct {
	Box   BoundingBox
	Start time.Time
	End   time.Time

	// Pressure band in dbar. A zero MaxPressure means DefaultMaxPressure.
	MinPressure float64
	MaxPressure float64
}

// WithDefaults returns a copy of the query with the default pressure band
// applied where unset.
func (q RegionQuery) WithDefaults() RegionQuery {
	if q.MaxPressure == 0 {
		q.MaxPressure = DefaultMaxPressure
	}
	return q
}

// Validate checks the query invariants.
func (q RegionQuery) Validate() error {
	if err := q.Box.Validate(); err != nil {
		return err
	}
	if q.Start.After(q.End) {
		return fmt.Errorf("query window: start %s is after end %s",
			q.Start.Format(time.RFC3339), q.End.Format(time.RFC3339))
	}
	if q.MinPressure < 0 {
		return fmt.Errorf("pressure band: min pressure %g dbar must not be negative", q.MinPressure)
	}
	if q.MaxPressure <= q.MinPressure {
		return fmt.Errorf("pressure band: max pressure %g dbar must exceed min pressure %g dbar",
			q.MaxPressure, q.MinPressure)
	}
	return nil
}
