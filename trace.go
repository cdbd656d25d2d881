package phugoid

import (
	"fmt"
	"math"
	"os"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

const (
	// StepSize is the default arclength advanced per marching step.
	StepSize = 1.0
)

var wg sync.WaitGroup

/* Handles the phugoid flight-path marching. */

// FaultPolicy defines how non-finite arithmetic surfaces during a trace.
type FaultPolicy uint8

const (
	// PropagateFaults lets NaN and infinities flow through the remaining
	// steps, so a degenerate trajectory still completes.
	PropagateFaults FaultPolicy = iota
	// RaiseFaults stops the trace with an error at the first non-finite state.
	RaiseFaults
)

func (p FaultPolicy) String() string {
	switch p {
	case PropagateFaults:
		return "propagate"
	case RaiseFaults:
		return "raise"
	}
	panic("cannot stringify unknown fault policy")
}

// TraceState stores one marching snapshot.
type TraceState struct {
	Step int
	X, Z float64
	Θ    float64 // heading in radians
	R    float64 // radius of curvature used to reach this point (NaN at step 0)
}

// Tracer computes the flight path of one glider. The marching has a strict
// step-to-step dependency, so a single trace always runs sequentially.
type Tracer struct {
	Zt, Z0   float64 // trim depth and initial depth
	Theta0   float64 // initial flight-path angle in degrees
	N        int
	Ds       float64
	Policy   FaultPolicy
	C        float64 // integration constant, conserved along the trajectory
	θ        float64 // current heading in radians
	logger   kitlog.Logger
	histChan chan<- TraceState
}

// NewTracer is the same as NewCustomTracer with the default step size and
// fault policy.
func NewTracer(zt, z0, theta0 float64, N int, conf ExportConfig) *Tracer {
	return NewCustomTracer(zt, z0, theta0, N, StepSize, PropagateFaults, conf)
}

// NewCustomTracer returns a new Tracer with custom provided arclength step
// and fault policy. The integration constant is derived here, exactly once.
// A non-positive N falls back to the configured trace resolution.
func NewCustomTracer(zt, z0, theta0 float64, N int, ds float64, policy FaultPolicy, conf ExportConfig) *Tracer {
	if N <= 0 {
		N = phugoidConfig().resolution
	}
	// If no filepath is provided, then no output will be written.
	var histChan chan TraceState
	if !conf.IsUseless() {
		histChan = make(chan TraceState, 1000) // a 1k entry buffer
		wg.Add(1)
		go func() {
			defer wg.Done()
			StreamStates(conf, histChan)
		}()
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "phugoid", fmt.Sprintf("zt=%g z0=%g θ0=%g", zt, z0, theta0))
	θ0 := theta0 * deg2rad
	return &Tracer{zt, z0, theta0, N, ds, policy, IntegrationConstant(z0, zt, θ0), θ0, klog, histChan}
}

// LogStatus logs the trace parameters and the current heading.
func (t *Tracer) LogStatus() {
	t.logger.Log("level", "info", "subsys", "trace", "C", t.C, "points", t.N, "ds", t.Ds, "policy", t.Policy, "θ(deg)", Rad2deg(t.θ))
}

// Trace marches the N points and returns the traversal-ordered coordinate
// slices. The returned error is always nil under PropagateFaults; under
// RaiseFaults it names the first step whose state went non-finite.
func (t *Tracer) Trace() (xs, zs []float64, err error) {
	t.LogStatus()
	xs = make([]float64, t.N)
	zs = make([]float64, t.N)
	xs[0], zs[0] = 0, t.Z0
	if t.histChan != nil {
		t.histChan <- TraceState{0, xs[0], zs[0], t.θ, math.NaN()}
	}
	faulted := false
	arclen := 0.0
	for i := 1; i < t.N; i++ {
		// Unit normal to the heading, adjusted for the downward z axis.
		sθ, cθ := math.Sincos(t.θ + math.Pi/2)
		R := RadiusOfCurvature(zs[i-1], t.Zt, t.C)
		// One step treats the local curvature as constant over ds of
		// arclength: rotate the previous point about the osculating center.
		xc := xs[i-1] + R*cθ
		zc := zs[i-1] - R*sθ
		dθ := t.Ds / R
		xs[i], zs[i] = RotateAbout(xs[i-1], zs[i-1], xc, zc, dθ, Radians)
		t.θ += dθ
		arclen += dist(xs[i-1], zs[i-1], xs[i], zs[i])
		if !faulted && (!finite(xs[i]) || !finite(zs[i])) {
			faulted = true
			if t.Policy == RaiseFaults {
				t.drain()
				return nil, nil, fmt.Errorf("non-finite state at step %d (x=%v z=%v R=%v)", i, xs[i], zs[i], R)
			}
			t.logger.Log("level", "warning", "subsys", "trace", "step", i, "R", R, "message", "non-finite state, propagating")
		}
		if t.histChan != nil {
			t.histChan <- TraceState{i, xs[i], zs[i], t.θ, R}
		}
	}
	t.drain()
	t.logger.Log("level", "notice", "subsys", "trace", "status", "finished", "arclength", arclen, "zMin", floats.Min(zs), "zMax", floats.Max(zs))
	t.LogStatus()
	return xs, zs, nil
}

// drain closes the history channel and waits for all files to be written.
func (t *Tracer) drain() {
	if t.histChan != nil {
		close(t.histChan)
		t.histChan = nil
	}
	wg.Wait()
}

// Trace computes the flight path of a glider trimmed at depth zt, released
// at depth z0 with an initial flight-path angle of theta0 degrees, and
// returns the N points of the discretized trajectory. Point 0 is (0, z0).
func Trace(zt, z0, theta0 float64, N int) (xs, zs []float64) {
	xs, zs, _ = NewTracer(zt, z0, theta0, N, ExportConfig{}).Trace()
	return
}
