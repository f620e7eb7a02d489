package erddap

import (
	"fmt"

	"github.com/couchcryptid/argo-acoustics/argo"
)

// PointsToProfiles groups a point set into per-cast profiles, keyed by
// platform and cycle, preserving the order in which casts first appear.
// Cast position and time come from the first point seen; the measurement
// slices keep the points' order, including levels with missing readings.
func (c *Client) PointsToProfiles(points argo.PointSet) ([]argo.Profile, error) {
	byCast := make(map[castKey]*argo.Profile)
	var order []castKey

	for i, pt := range points {
		if pt.Platform == "" {
			return nil, fmt.Errorf("point %d has no platform number", i)
		}

		key := castKey{platform: pt.Platform, cycle: pt.Cycle}
		prof, ok := byCast[key]
		if !ok {
			prof = &argo.Profile{
				Platform: pt.Platform,
				Cycle:    pt.Cycle,
				Lat:      pt.Lat,
				Lon:      pt.Lon,
				Time:     pt.Time,
			}
			byCast[key] = prof
			order = append(order, key)
		}

		prof.Pressure = append(prof.Pressure, pt.Pressure)
		prof.Temperature = append(prof.Temperature, pt.Temperature)
		prof.Salinity = append(prof.Salinity, pt.Salinity)
	}

	profiles := make([]argo.Profile, 0, len(order))
	for _, key := range order {
		profiles = append(profiles, *byCast[key])
	}
	return profiles, nil
}
