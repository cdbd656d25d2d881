package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/ChristopherRabotin/phugoid"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and traces the flight path.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "glider scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
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

	// Read glider parameters
	name := viper.GetString("glider.name")
	if name == "" {
		name = "glider"
	}
	zt := viper.GetFloat64("glider.trim_depth")
	z0 := viper.GetFloat64("glider.initial_depth")
	theta0 := viper.GetFloat64("glider.theta0")

	// Read trace parameters
	N := viper.GetInt("trace.points")
	ds := viper.GetFloat64("trace.ds")
	if ds == 0 {
		ds = phugoid.StepSize
	}
	policy := phugoid.PropagateFaults
	if viper.GetBool("trace.strict") {
		policy = phugoid.RaiseFaults
	}
	if verbose {
		log.Printf("[conf] %s: zt=%g z0=%g theta0=%g N=%d ds=%g policy=%s\n", name, zt, z0, theta0, N, ds, policy)
	}

	conf := phugoid.ExportConfig{Filename: name, AsCSV: true, Timestamp: viper.GetBool("trace.timestamp")}
	tracer := phugoid.NewCustomTracer(zt, z0, theta0, N, ds, policy, conf)
	if _, _, err := tracer.Trace(); err != nil {
		log.Fatalf("trace failed: %s", err)
	}
	fmt.Printf("%s: C=%f\n", name, tracer.C)
}
