package tracklog

import (
	"encoding/xml"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"flightsim/internal/geo"
	"flightsim/internal/sim"
)

func TestWriter_TrackContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.gpx")
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	w, err := NewWriter(path, "test flight", start)
	if err != nil {
		t.Fatalf("NewWriter() error: %v", err)
	}

	reports := []sim.Report{
		{ElapsedSec: 0, Position: geo.Fix{LatDeg: 47.0, LonDeg: -122.0, AltFeet: 1000}},
		{ElapsedSec: 1, Position: geo.Fix{LatDeg: 47.1, LonDeg: -122.1, AltFeet: 2000}},
		{ElapsedSec: 2, Position: geo.Fix{LatDeg: 47.2, LonDeg: -122.2, AltFeet: 3000}, Final: true},
	}
	for _, r := range reports {
		if err := w.Send(r); err != nil {
			t.Fatalf("Send() error: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.HasPrefix(string(raw), "<?xml") {
		t.Fatalf("missing XML header: %q", string(raw[:20]))
	}

	var doc gpxDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if doc.Version != "1.1" || doc.Trk.Name != "test flight" {
		t.Fatalf("doc header=%+v", doc)
	}
	pts := doc.Trk.Seg.Points
	if len(pts) != 3 {
		t.Fatalf("points=%d want 3", len(pts))
	}

	// Elevation is stored in meters.
	if math.Abs(pts[0].Ele-1000*0.3048) > 1e-9 {
		t.Fatalf("ele=%v want %v", pts[0].Ele, 1000*0.3048)
	}
	// Timestamps advance one second per tick from the start time.
	if !pts[0].Time.Equal(start) || !pts[2].Time.Equal(start.Add(2*time.Second)) {
		t.Fatalf("times=%v %v", pts[0].Time, pts[2].Time)
	}
	if pts[1].Lat != 47.1 || pts[1].Lon != -122.1 {
		t.Fatalf("point=%+v", pts[1])
	}
}

func TestNewWriter_BadPath(t *testing.T) {
	_, err := NewWriter(filepath.Join(t.TempDir(), "missing", "flight.gpx"), "x", time.Now())
	if err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
