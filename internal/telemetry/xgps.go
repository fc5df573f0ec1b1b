package telemetry

import (
	"flightsim/internal/sim"
	"flightsim/internal/xgps"
)

// ByteSender sends one raw datagram. *udp.Sender satisfies it.
type ByteSender interface {
	Send(payload []byte) error
}

// XGPS encodes each report as an XGPS datagram and hands it to the
// underlying sender.
type XGPS struct {
	Sender ByteSender
}

func (x *XGPS) Send(r sim.Report) error {
	return x.Sender.Send(xgps.Datagram(
		r.Position.LatDeg, r.Position.LonDeg, r.Position.AltFeet, r.HeadingDeg, r.GroundKt))
}
