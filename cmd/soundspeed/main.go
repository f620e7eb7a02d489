// Command soundspeed evaluates the seawater formulas from the command line.
//
// Usage:
//
//	go run ./cmd/soundspeed -model leroy08 -depth 1000 -sal 35 -temp 6.1 -lat 25
//	go run ./cmd/soundspeed -model gravity -lat 52 -corrective 0.002
//	go run ./cmd/soundspeed -model cutoff -cwater 1518.4 -depth 11
//
// Domain violations (for the range-checked models) exit non-zero with the
// violated bound on stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/couchcryptid/argo-acoustics/seawater"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	model := flag.String("model", "", "formula to evaluate: leroy68, leroy69, leroy08, mackenzie81, gravity, depth, cutoff, cutoff-shallow")
	depth := flag.Float64("depth", 0, "depth in meters (duct or water depth for the cutoff models)")
	sal := flag.Float64("sal", 35, "salinity in parts per thousand")
	temp := flag.Float64("temp", 10, "water temperature in degrees Celsius")
	lat := flag.Float64("lat", 45, "latitude in degrees")
	press := flag.Float64("press", 0, "water pressure in MPa relative to atmospheric")
	cWater := flag.Float64("cwater", 1500, "sound speed in water in m/s")
	cBottom := flag.Float64("cbottom", 1600, "sound speed in a homogeneous bottom in m/s")
	corrective := flag.String("corrective", "", "optional corrective term for gravity/depth; empty applies none")
	flag.Parse()

	if *model == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -model")
	}

	// An empty string means no correction at all; "0" is a real zero-valued
	// corrective term.
	var correction []float64
	if *corrective != "" {
		v, err := strconv.ParseFloat(*corrective, 64)
		if err != nil {
			return fmt.Errorf("invalid -corrective value %q", *corrective)
		}
		correction = append(correction, v)
	}
	if len(correction) > 0 && *model != "gravity" && *model != "depth" {
		return fmt.Errorf("-corrective only applies to the gravity and depth models")
	}

	switch *model {
	case "leroy68":
		fmt.Printf("sound speed: %g m/s\n", seawater.SoundSpeedLeroy68(*depth, *lat))
	case "leroy69":
		c, err := seawater.SoundSpeedLeroy69(*depth, *sal, *temp)
		if err != nil {
			return err
		}
		fmt.Printf("sound speed: %g m/s\n", c)
	case "leroy08":
		fmt.Printf("sound speed: %g m/s\n", seawater.SoundSpeedLeroy08(*depth, *sal, *temp, *lat))
	case "mackenzie81":
		fmt.Printf("sound speed: %g m/s\n", seawater.SoundSpeedMackenzie81(*depth, *sal, *temp))
	case "gravity":
		fmt.Printf("gravity: %g m/s2\n", seawater.Gravity(*lat, correction...))
	case "depth":
		fmt.Printf("depth: %g m\n", seawater.DepthFromPressureLeroy98(*press, *lat, correction...))
	case "cutoff":
		fmt.Printf("cutoff frequency: %g Hz\n", seawater.CutoffFrequency(*cWater, *depth))
	case "cutoff-shallow":
		f, err := seawater.CutoffFrequencyShallow(*cWater, *cBottom, *depth)
		if err != nil {
			return err
		}
		fmt.Printf("cutoff frequency: %g Hz\n", f)
	default:
		return fmt.Errorf("unknown model %q", *model)
	}
	return nil
}
