package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/couchcryptid/argo-acoustics/argo"
	"github.com/couchcryptid/argo-acoustics/seawater"
)

// Mixed layer detection thresholds, following de Boyer Montégut et al. (2004).
const (
	mldReferenceDepth = 10.0 // m; levels shallower than this cannot anchor the criterion
	mldTempThreshold  = 0.2  // °C deviation from the reference temperature
)

// EnrichProfile derives the acoustic view of a measured cast: per-level sound
// speeds via the Leroy, Robinson, and Goldsmith (2008) equation, plus a
// summary with the sound speed envelope, the mixed layer depth, and the duct
// cutoff frequency. Levels missing any of pressure, temperature, or salinity
// are dropped; a cast with no complete level is an error, as is one without
// a position.
func EnrichProfile(p argo.Profile, source string) (ProfileEvent, error) {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) {
		return ProfileEvent{}, fmt.Errorf("enrich profile %s cycle %d: missing position", p.Platform, p.Cycle)
	}

	n := p.Levels()
	if len(p.Temperature) != n || len(p.Salinity) != n {
		return ProfileEvent{}, fmt.Errorf("enrich profile %s cycle %d: measurement slices have unequal lengths", p.Platform, p.Cycle)
	}

	levels := make([]Level, 0, n)
	for i := 0; i < n; i++ {
		pres, temp, sal := p.Pressure[i], p.Temperature[i], p.Salinity[i]
		if math.IsNaN(pres) || math.IsNaN(temp) || math.IsNaN(sal) {
			continue
		}
		// One dbar of hydrostatic pressure is close to one meter of depth.
		depth := pres
		levels = append(levels, Level{
			Pressure:    pres,
			Depth:       depth,
			Temperature: temp,
			Salinity:    sal,
			SoundSpeed:  seawater.SoundSpeedLeroy08(depth, sal, temp, p.Lat),
		})
	}
	if len(levels) == 0 {
		return ProfileEvent{}, fmt.Errorf("enrich profile %s cycle %d: no complete levels", p.Platform, p.Cycle)
	}

	return ProfileEvent{
		ID:          generateID(p.Platform, p.Cycle, p.Time),
		Platform:    p.Platform,
		Cycle:       p.Cycle,
		Geo:         Geo{Lat: p.Lat, Lon: p.Lon},
		ObservedAt:  p.Time.UTC(),
		Levels:      levels,
		Summary:     summarize(levels),
		Source:      source,
		ProcessedAt: clock.Now().UTC(),
	}, nil
}

// summarize computes the sound speed envelope and, when a mixed layer is
// detectable, the surface duct properties.
func summarize(levels []Level) Summary {
	speeds := make([]float64, len(levels))
	for i, l := range levels {
		speeds[i] = l.SoundSpeed
	}

	s := Summary{
		Levels:         len(levels),
		MinSoundSpeed:  floats.Min(speeds),
		MaxSoundSpeed:  floats.Max(speeds),
		MeanSoundSpeed: floats.Sum(speeds) / float64(len(speeds)),
	}

	if mld := mixedLayerDepth(levels); mld > 0 {
		s.MixedLayerDepth = mld
		s.CutoffFrequencyHz = ductCutoff(levels, mld)
	}

	return s
}

// mixedLayerDepth applies the temperature threshold criterion: the reference
// is the shallowest level at mldReferenceDepth or deeper, and the mixed layer
// extends to the first deeper level whose temperature deviates from the
// reference by more than mldTempThreshold. Returns 0 when the cast has no
// reference level or never crosses the threshold.
func mixedLayerDepth(levels []Level) float64 {
	ref := -1
	for i, l := range levels {
		if l.Depth >= mldReferenceDepth {
			ref = i
			break
		}
	}
	if ref < 0 {
		return 0
	}

	for _, l := range levels[ref+1:] {
		if math.Abs(l.Temperature-levels[ref].Temperature) > mldTempThreshold {
			return l.Depth
		}
	}
	return 0
}

// ductCutoff treats the mixed layer as a surface duct and returns the lowest
// frequency it traps, evaluated at the mean sound speed of the in-layer levels.
func ductCutoff(levels []Level, mld float64) float64 {
	var sum float64
	var n int
	for _, l := range levels {
		if l.Depth <= mld {
			sum += l.SoundSpeed
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return seawater.CutoffFrequency(sum/float64(n), mld)
}

// generateID produces a deterministic ID from the cast's key fields.
// Reprocessing the same cast yields the same ID, which gives downstream
// consumers idempotent upserts (ON CONFLICT DO NOTHING) and replay safety.
func generateID(platform string, cycle int, observed time.Time) string {
	input := fmt.Sprintf("%s|%d|%s", platform, cycle, observed.UTC().Format(time.RFC3339))
	hash := sha256.Sum256([]byte(input))
	return "argo-" + hex.EncodeToString(hash[:8])
}
