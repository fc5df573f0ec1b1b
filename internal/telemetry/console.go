// Package telemetry holds the report sinks the simulation fans out to:
// the console table, the XGPS datagram sender, and the GPX track log
// (which lives in internal/tracklog).
package telemetry

import (
	"fmt"
	"io"
	"strings"

	"flightsim/internal/sim"
)

// Console prints the per-tick report table.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// WriteBanner prints the run header: speed, route and column names.
func (c *Console) WriteBanner(names []string, speedKt float64) {
	fmt.Fprintf(c.w, "Starting flight simulation at %g knots\n", speedKt)
	fmt.Fprint(c.w, "Route: ")
	for i, n := range names {
		if i > 0 {
			fmt.Fprint(c.w, " -> ")
		}
		fmt.Fprint(c.w, n)
	}
	fmt.Fprint(c.w, "\n\n")
	fmt.Fprintf(c.w, "%8s | %10s | %12s | %12s | %13s | %8s\n",
		"Time (s)", "Waypoint", "Latitude", "Longitude", "Altitude (ft)", "Heading")
	fmt.Fprintln(c.w, strings.Repeat("-", 95))
}

// Send prints one table row. The arrival record drops the "→" marker,
// and is followed by the completion line.
func (c *Console) Send(r sim.Report) error {
	label := r.Target
	if !r.Final {
		label = "→ " + r.Target
	}
	_, err := fmt.Fprintf(c.w, "%8d | %10s | %12.8f | %12.8f | %13.1f | %8.2f°\n",
		r.ElapsedSec, label, r.Position.LatDeg, r.Position.LonDeg, r.Position.AltFeet, r.HeadingDeg)
	if err != nil {
		return err
	}
	if r.Final {
		_, err = fmt.Fprintf(c.w, "\nArrived at %s - Flight complete!\n", r.Target)
	}
	return err
}
