// Command genprofiles generates a synthetic ERDDAP tabledap response holding
// Argo-style casts with noise-driven thermocline structure. It runs the actual
// enrichment package over the generated casts so the printed summaries match
// real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genprofiles \
//	  -out data/mock/argo_profiles_generated.json \
//	  -casts 6 -levels 40 -seed 1
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/argo-acoustics/argo"
	"github.com/couchcryptid/argo-acoustics/internal/domain"
	"github.com/jonboulle/clockwork"
	opensimplex "github.com/ojrac/opensimplex-go"
)

var baseTime = time.Date(2026, time.August, 14, 6, 0, 0, 0, time.UTC)

// Sargasso Sea box, matching the service defaults.
const (
	minLon = -75.0
	maxLon = -45.0
	minLat = 20.0
	maxLat = 30.0
)

type tableDoc struct {
	Table tableBody `json:"table"`
}

type tableBody struct {
	ColumnNames []string `json:"columnNames"`
	ColumnTypes []string `json:"columnTypes"`
	ColumnUnits []any    `json:"columnUnits"`
	Rows        [][]any  `json:"rows"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/mock/argo_profiles_generated.json", "output path for the tabledap JSON fixture")
	casts := flag.Int("casts", 6, "number of casts to generate")
	levels := flag.Int("levels", 40, "maximum levels per cast")
	seed := flag.Int64("seed", 1, "noise and rng seed")
	missing := flag.Float64("missing", 0.05, "fraction of cells replaced with null")
	flag.Parse()

	if *casts < 1 || *levels < 1 {
		flag.Usage()
		return fmt.Errorf("-casts and -levels must be positive")
	}

	noise := opensimplex.NewNormalized(*seed)
	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // reproducible fixtures, not crypto

	doc := tableDoc{Table: tableBody{
		ColumnNames: []string{"platform_number", "cycle_number", "time", "latitude", "longitude", "pres", "temp", "psal"},
		ColumnTypes: []string{"String", "int", "String", "double", "double", "float", "float", "float"},
		ColumnUnits: []any{nil, nil, "UTC", "degrees_north", "degrees_east", "decibar", "degree_Celsius", "PSU"},
	}}

	profiles := make([]argo.Profile, 0, *casts)
	for i := 0; i < *casts; i++ {
		rows, profile := generateCast(noise, rng, i, *levels, *missing)
		doc.Table.Rows = append(doc.Table.Rows, rows...)
		profiles = append(profiles, profile)
	}

	if err := writeJSON(*out, doc); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote %d casts (%d rows): %s", len(profiles), len(doc.Table.Rows), *out)

	printStats(profiles)
	return nil
}

// generateCast builds one cast as tabledap rows plus the equivalent decoded
// profile. Temperature follows a smooth thermocline: near-surface values sit
// at the mixed layer temperature and relax to the deep value below mld.
func generateCast(noise opensimplex.Noise, rng *rand.Rand, idx, maxLevels int, missingFrac float64) ([][]any, argo.Profile) {
	cx := float64(idx) * 1.7

	profile := argo.Profile{
		Platform: fmt.Sprintf("%d", 6902700+rng.Intn(200)),
		Cycle:    1 + rng.Intn(180),
		Lat:      round3(minLat + rng.Float64()*(maxLat-minLat)),
		Lon:      round3(minLon + rng.Float64()*(maxLon-minLon)),
		Time:     baseTime.Add(-time.Duration(idx) * 9 * time.Hour),
	}

	surface := 17 + 5*noise.Eval2(cx, 0.2)
	deep := 4 + 2*noise.Eval2(cx, 9.5)
	mld := 15 + 70*noise.Eval2(cx, 3.3)
	width := 6 + 12*noise.Eval2(cx, 6.1)

	rows := make([][]any, 0, maxLevels)
	pres := 2.0
	for k := 0; k < maxLevels; k++ {
		temp := deep + (surface-deep)/(1+math.Exp((pres-mld)/width))
		temp += 0.05 * (noise.Eval2(cx, pres*0.01) - 0.5)
		sal := 35.2 + 1.4*noise.Eval2(cx+0.5, pres*0.004)

		row := []any{
			profile.Platform,
			profile.Cycle,
			profile.Time.Format(time.RFC3339),
			profile.Lat,
			profile.Lon,
		}
		for _, v := range []float64{round3(pres), round3(temp), round3(sal)} {
			if rng.Float64() < missingFrac {
				row = append(row, nil)
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)

		profile.Pressure = append(profile.Pressure, cellValue(row[5]))
		profile.Temperature = append(profile.Temperature, cellValue(row[6]))
		profile.Salinity = append(profile.Salinity, cellValue(row[7]))

		pres += 2 + 0.6*float64(k)
	}

	return rows, profile
}

func cellValue(cell any) float64 {
	v, ok := cell.(float64)
	if !ok {
		return math.NaN()
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(profiles []argo.Profile) {
	// Pin the clock so ProcessedAt is reproducible across runs.
	domain.SetClock(clockwork.NewFakeClockAt(baseTime.Add(24 * time.Hour)))
	defer domain.SetClock(nil)

	fmt.Println("\n=== Stats for updating test assertions ===")
	for _, p := range profiles {
		present := p.PresentPressureSamples()
		fmt.Printf("cast %s/%d: %d levels, %d present pressure samples\n",
			p.Platform, p.Cycle, p.Levels(), present)

		event, err := domain.EnrichProfile(p, "mock")
		if err != nil {
			fmt.Printf("  enrichment skipped: %v\n", err)
			continue
		}
		fmt.Printf("  id=%s complete_levels=%d\n", event.ID, event.Summary.Levels)
		fmt.Printf("  sound_speed min=%.3f max=%.3f mean=%.3f\n",
			event.Summary.MinSoundSpeed, event.Summary.MaxSoundSpeed, event.Summary.MeanSoundSpeed)
		if event.Summary.MixedLayerDepth > 0 {
			fmt.Printf("  mixed_layer_depth=%.1f cutoff_hz=%.3f\n",
				event.Summary.MixedLayerDepth, event.Summary.CutoffFrequencyHz)
		}
	}
}
