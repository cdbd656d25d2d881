package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/ChristopherRabotin/phugoid"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Renders the traced flight path of a scenario to a PNG. The z axis is
// negated so that altitude increases upward on screen.

const (
	defaultScenario = "~~unset~~"
	plotWidth       = 10 * vg.Inch
)

var (
	scenario string
	output   string
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "glider scenario TOML file")
	flag.StringVar(&output, "o", "", "output PNG (defaults to <scenario>.png)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}
	if output == "" {
		output = scenario + ".png"
	}

	zt := viper.GetFloat64("glider.trim_depth")
	z0 := viper.GetFloat64("glider.initial_depth")
	theta0 := viper.GetFloat64("glider.theta0")
	N := viper.GetInt("trace.points")
	ds := viper.GetFloat64("trace.ds")
	if ds == 0 {
		ds = phugoid.StepSize
	}

	tracer := phugoid.NewCustomTracer(zt, z0, theta0, N, ds, phugoid.PropagateFaults, phugoid.ExportConfig{})
	xs, zs, _ := tracer.Trace()

	// Drop any non-finite tail from a degenerate trace before plotting.
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(zs[i]) || math.IsInf(xs[i], 0) || math.IsInf(zs[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: -zs[i]})
	}
	if len(pts) == 0 {
		log.Fatal("trajectory is fully degenerate, nothing to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Phugoid path (C=%.4f, zt=%g, z0=%g, theta0=%g)", tracer.C, zt, z0, theta0)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "altitude (-z)"
	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatalf("cannot build line: %s", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(plotWidth, plotHeight(pts), output); err != nil {
		log.Fatalf("cannot save %s: %s", output, err)
	}
	fmt.Printf("Saving file to %s.\n", output)
}

// plotHeight scales the canvas height to the data aspect ratio so that one
// unit of x and one unit of -z render the same length.
func plotHeight(pts plotter.XYs) vg.Length {
	xmin, xmax := pts[0].X, pts[0].X
	ymin, ymax := pts[0].Y, pts[0].Y
	for _, pt := range pts {
		xmin = math.Min(xmin, pt.X)
		xmax = math.Max(xmax, pt.X)
		ymin = math.Min(ymin, pt.Y)
		ymax = math.Max(ymax, pt.Y)
	}
	if xmax == xmin || ymax == ymin {
		return plotWidth
	}
	h := plotWidth * vg.Length((ymax-ymin)/(xmax-xmin))
	if h < vg.Inch {
		h = vg.Inch
	}
	return h
}
