// Package sim advances a simulated aircraft along a waypoint route.
//
// The loop is deliberately single-threaded: one tick is one simulated
// second, and the only suspension points are the injected clock wait
// and the telemetry sends.
package sim

import (
	"context"
	"fmt"
	"log"

	"flightsim/internal/geo"
	"flightsim/internal/route"
)

// DefaultGroundKt is the ground speed used when none is configured.
const DefaultGroundKt = 120.0

// Report is one per-tick position record.
//
// Target is the name of the waypoint being flown toward. Final marks
// the arrival record emitted once at the last waypoint.
type Report struct {
	ElapsedSec int
	Target     string
	Position   geo.Fix
	HeadingDeg float64
	GroundKt   float64
	Final      bool
}

// Sink receives one Report per tick. Sends are best-effort telemetry:
// a failing sink is logged and the simulation continues.
type Sink interface {
	Send(Report) error
}

// Flight is a single simulated flight over a fixed waypoint route.
type Flight struct {
	Waypoints []route.Waypoint
	GroundKt  float64
	Clock     Clock
	Sinks     []Sink

	// Log receives sink failure warnings. Defaults to the standard logger.
	Log *log.Logger
}

// Run flies the route tick by tick until the final waypoint is reached
// or ctx is cancelled. It returns ctx.Err() on cancellation.
func (f *Flight) Run(ctx context.Context) error {
	if len(f.Waypoints) < 2 {
		return fmt.Errorf("sim: need at least 2 waypoints, got %d", len(f.Waypoints))
	}

	speed := f.GroundKt
	if speed <= 0 {
		speed = DefaultGroundKt
	}
	clock := f.Clock
	if clock == nil {
		clock = IntervalClock{}
	}
	perTickNm := speed / 3600.0

	idx := 0
	intoSegNm := 0.0
	elapsed := 0

	for idx < len(f.Waypoints)-1 {
		wp1 := f.Waypoints[idx]
		wp2 := f.Waypoints[idx+1]
		segNm := geo.Distance(wp1.Fix(), wp2.Fix())

		// A zero-length segment counts as instantly traversed.
		fraction := 1.0
		if segNm > 0 {
			fraction = intoSegNm / segNm
		}

		f.emit(Report{
			ElapsedSec: elapsed,
			Target:     wp2.Name,
			Position:   geo.Interpolate(wp1.Fix(), wp2.Fix(), fraction),
			HeadingDeg: geo.InitialBearing(wp1.Fix(), wp2.Fix()),
			GroundKt:   speed,
		})

		intoSegNm += perTickNm
		if intoSegNm >= segNm {
			// Single-step rollover: if one tick overshoots several short
			// segments, the excess is absorbed on subsequent ticks.
			intoSegNm -= segNm
			idx++
		}
		elapsed++

		if err := clock.Wait(ctx); err != nil {
			return err
		}
	}

	last := f.Waypoints[len(f.Waypoints)-1]
	prev := f.Waypoints[len(f.Waypoints)-2]
	f.emit(Report{
		ElapsedSec: elapsed,
		Target:     last.Name,
		Position:   last.Fix(),
		HeadingDeg: geo.InitialBearing(prev.Fix(), last.Fix()),
		GroundKt:   speed,
		Final:      true,
	})
	return nil
}

func (f *Flight) emit(r Report) {
	for _, s := range f.Sinks {
		if err := s.Send(r); err != nil {
			f.logf("telemetry send failed: %v", err)
		}
	}
}

func (f *Flight) logf(format string, args ...any) {
	if f.Log != nil {
		f.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
