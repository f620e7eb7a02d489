package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/argo-acoustics/argo"
)

func TestEnrichProfile(t *testing.T) {
	fixedTime := time.Date(2026, 8, 20, 12, 30, 45, 0, time.UTC)
	mockClock := clockwork.NewFakeClockAt(fixedTime)
	SetClock(mockClock)
	defer SetClock(nil)

	nan := math.NaN()

	t.Run("complete cast", func(t *testing.T) {
		result, err := EnrichProfile(testProfile(), "erddap")
		require.NoError(t, err)

		assert.Equal(t, "argo-ba6a61e7ef9c34ab", result.ID)
		assert.Equal(t, "6902746", result.Platform)
		assert.Equal(t, 42, result.Cycle)
		assert.Equal(t, Geo{Lat: 25, Lon: -60}, result.Geo)
		assert.Equal(t, time.Date(2026, 8, 14, 6, 0, 0, 0, time.UTC), result.ObservedAt)
		assert.Equal(t, "erddap", result.Source)
		assert.Equal(t, fixedTime, result.ProcessedAt)

		require.Len(t, result.Levels, 6)
		first := result.Levels[0]
		assert.Equal(t, 5.0, first.Pressure)
		assert.Equal(t, 5.0, first.Depth)
		assert.Equal(t, 18.50, first.Temperature)
		assert.Equal(t, 36.1, first.Salinity)
		assert.InDelta(t, 1518.6655717218905, first.SoundSpeed, 1e-9)

		assert.Equal(t, 6, result.Summary.Levels)
		assert.InDelta(t, 1491.263013733, result.Summary.MinSoundSpeed, 1e-9)
		assert.InDelta(t, 1519.01151268653, result.Summary.MaxSoundSpeed, 1e-9)
		assert.InDelta(t, 1512.5255474856986, result.Summary.MeanSoundSpeed, 1e-9)
		assert.Equal(t, 110.0, result.Summary.MixedLayerDepth)
		assert.InDelta(t, 164.552245773315, result.Summary.CutoffFrequencyHz, 1e-9)
	})

	t.Run("incomplete levels dropped", func(t *testing.T) {
		p := testProfile()
		p.Temperature[2] = nan
		p.Salinity[4] = nan

		result, err := EnrichProfile(p, "erddap")
		require.NoError(t, err)

		require.Len(t, result.Levels, 4)
		assert.Equal(t, 4, result.Summary.Levels)
		for _, l := range result.Levels {
			assert.False(t, math.IsNaN(l.SoundSpeed))
		}
	})

	t.Run("no complete levels", func(t *testing.T) {
		p := testProfile()
		for i := range p.Temperature {
			p.Temperature[i] = nan
		}

		_, err := EnrichProfile(p, "erddap")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no complete levels")
	})

	t.Run("missing position", func(t *testing.T) {
		p := testProfile()
		p.Lat = nan

		_, err := EnrichProfile(p, "erddap")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing position")
	})

	t.Run("ragged measurement slices", func(t *testing.T) {
		p := testProfile()
		p.Salinity = p.Salinity[:3]

		_, err := EnrichProfile(p, "erddap")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unequal lengths")
	})

	t.Run("no mixed layer detected", func(t *testing.T) {
		p := testProfile()
		p.Pressure = []float64{5, 25, 60}
		p.Temperature = []float64{18.50, 18.45, 18.40}
		p.Salinity = []float64{36.1, 36.1, 36.0}

		result, err := EnrichProfile(p, "erddap")
		require.NoError(t, err)

		assert.Zero(t, result.Summary.MixedLayerDepth)
		assert.Zero(t, result.Summary.CutoffFrequencyHz)
	})
}

func TestMixedLayerDepth(t *testing.T) {
	tests := []struct {
		name   string
		depths []float64
		temps  []float64
		want   float64
	}{
		{
			name:   "temperature jump below the reference",
			depths: []float64{5, 25, 60, 110, 250},
			temps:  []float64{18.50, 18.42, 18.35, 17.90, 14.20},
			want:   110,
		},
		{
			name:   "isothermal cast",
			depths: []float64{5, 25, 60, 110},
			temps:  []float64{18.00, 18.05, 17.95, 18.10},
			want:   0,
		},
		{
			name:   "cast entirely above the reference depth",
			depths: []float64{2, 5, 8},
			temps:  []float64{18, 17, 15},
			want:   0,
		},
		{
			name:   "reference exactly at ten meters",
			depths: []float64{10, 30},
			temps:  []float64{18.0, 17.5},
			want:   30,
		},
		{
			name:   "deviation not exceeding the threshold",
			depths: []float64{10, 30},
			temps:  []float64{18.0, 17.8},
			want:   0,
		},
		{
			name:   "warming inversion counts too",
			depths: []float64{10, 30},
			temps:  []float64{15.0, 15.3},
			want:   30,
		},
		{
			name:   "deeper reference when ten meters is not sampled",
			depths: []float64{5, 40, 80},
			temps:  []float64{18, 17, 15},
			want:   80,
		},
		{
			name:   "reference is the deepest level",
			depths: []float64{5, 20},
			temps:  []float64{18, 15},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := make([]Level, len(tt.depths))
			for i := range tt.depths {
				levels[i] = Level{Depth: tt.depths[i], Temperature: tt.temps[i]}
			}
			assert.Equal(t, tt.want, mixedLayerDepth(levels))
		})
	}
}

func TestGenerateID(t *testing.T) {
	observed := time.Date(2026, 8, 14, 6, 0, 0, 0, time.UTC)

	t.Run("known value", func(t *testing.T) {
		assert.Equal(t, "argo-ba6a61e7ef9c34ab", generateID("6902746", 42, observed))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, generateID("6902746", 42, observed), generateID("6902746", 42, observed))
	})

	t.Run("cycle changes the ID", func(t *testing.T) {
		assert.NotEqual(t, generateID("6902746", 42, observed), generateID("6902746", 43, observed))
	})

	t.Run("zone does not change the ID", func(t *testing.T) {
		shifted := observed.In(time.FixedZone("CEST", 2*3600))
		assert.Equal(t, generateID("6902746", 42, observed), generateID("6902746", 42, shifted))
	})
}

func TestProfileEventJSON(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 8, 20, 12, 30, 45, 0, time.UTC)))
	defer SetClock(nil)

	t.Run("with mixed layer", func(t *testing.T) {
		event, err := EnrichProfile(testProfile(), "erddap")
		require.NoError(t, err)

		data, err := json.Marshal(event)
		require.NoError(t, err)

		s := string(data)
		assert.Contains(t, s, `"id":"argo-ba6a61e7ef9c34ab"`)
		assert.Contains(t, s, `"platform":"6902746"`)
		assert.Contains(t, s, `"pressure_dbar"`)
		assert.Contains(t, s, `"depth_m"`)
		assert.Contains(t, s, `"sound_speed_ms"`)
		assert.Contains(t, s, `"mixed_layer_depth_m"`)
		assert.Contains(t, s, `"cutoff_frequency_hz"`)
		assert.Contains(t, s, `"observed_at":"2026-08-14T06:00:00Z"`)
	})

	t.Run("without mixed layer", func(t *testing.T) {
		p := testProfile()
		p.Pressure = []float64{5, 25, 60}
		p.Temperature = []float64{18.50, 18.45, 18.40}
		p.Salinity = []float64{36.1, 36.1, 36.0}

		event, err := EnrichProfile(p, "erddap")
		require.NoError(t, err)

		data, err := json.Marshal(event)
		require.NoError(t, err)

		s := string(data)
		assert.NotContains(t, s, `"mixed_layer_depth_m"`)
		assert.NotContains(t, s, `"cutoff_frequency_hz"`)
	})
}

// testProfile is a six-level cast in the Sargasso Sea with a thermocline
// onset at 110 dbar.
func testProfile() argo.Profile {
	return argo.Profile{
		Platform:    "6902746",
		Cycle:       42,
		Lat:         25,
		Lon:         -60,
		Time:        time.Date(2026, 8, 14, 6, 0, 0, 0, time.UTC),
		Pressure:    []float64{5, 25, 60, 110, 250, 1000},
		Temperature: []float64{18.50, 18.42, 18.35, 17.90, 14.20, 6.10},
		Salinity:    []float64{36.1, 36.1, 36.0, 36.0, 35.6, 34.9},
	}
}
