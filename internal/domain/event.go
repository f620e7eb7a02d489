package domain

import (
	"time"
)

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Level is one complete sampled level of a cast together with its derived
// sound speed. Depth repeats the pressure value in meters; see the package
// documentation for the approximation.
type Level struct {
	Pressure    float64 `json:"pressure_dbar"`
	Depth       float64 `json:"depth_m"`
	Temperature float64 `json:"temperature_c"`
	Salinity    float64 `json:"salinity_psu"`
	SoundSpeed  float64 `json:"sound_speed_ms"`
}

// Summary aggregates the acoustic character of a cast. MixedLayerDepth and
// CutoffFrequencyHz are zero, and omitted from JSON, when no mixed layer
// was detected.
type Summary struct {
	Levels            int     `json:"levels"`
	MinSoundSpeed     float64 `json:"min_sound_speed_ms"`
	MaxSoundSpeed     float64 `json:"max_sound_speed_ms"`
	MeanSoundSpeed    float64 `json:"mean_sound_speed_ms"`
	MixedLayerDepth   float64 `json:"mixed_layer_depth_m,omitempty"`
	CutoffFrequencyHz float64 `json:"cutoff_frequency_hz,omitempty"`
}

// ProfileEvent is the enriched representation destined for the sink topic.
type ProfileEvent struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	Cycle       int       `json:"cycle"`
	Geo         Geo       `json:"geo"`
	ObservedAt  time.Time `json:"observed_at"`
	Levels      []Level   `json:"levels"`
	Summary     Summary   `json:"summary"`
	Source      string    `json:"source,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}
