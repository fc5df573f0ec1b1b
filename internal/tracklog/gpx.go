// Package tracklog records the simulated flight as a GPX 1.1 track.
package tracklog

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"

	"flightsim/internal/sim"
)

const feetToMeters = 0.3048

type gpxDoc struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Xmlns   string   `xml:"xmlns,attr"`
	Trk     gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name string     `xml:"name"`
	Seg  gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []TrackPoint `xml:"trkpt"`
}

// TrackPoint is one recorded position. Elevation is in meters per the
// GPX schema; Time is the simulated start plus elapsed seconds.
type TrackPoint struct {
	Lat  float64   `xml:"lat,attr"`
	Lon  float64   `xml:"lon,attr"`
	Ele  float64   `xml:"ele"`
	Time time.Time `xml:"time"`
}

// Writer buffers trackpoints and writes a single-track GPX document on
// Close. It satisfies sim.Sink.
type Writer struct {
	name  string
	start time.Time
	pts   []TrackPoint
	out   io.WriteCloser
}

// NewWriter creates (truncating) the GPX file at path. The track name
// goes into <trk><name>; start anchors the trackpoint timestamps.
func NewWriter(path, name string, start time.Time) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("gpx: %w", err)
	}
	return &Writer{name: name, start: start.UTC(), out: f}, nil
}

func (w *Writer) Send(r sim.Report) error {
	w.pts = append(w.pts, TrackPoint{
		Lat:  r.Position.LatDeg,
		Lon:  r.Position.LonDeg,
		Ele:  r.Position.AltFeet * feetToMeters,
		Time: w.start.Add(time.Duration(r.ElapsedSec) * time.Second),
	})
	return nil
}

// Close writes the buffered track and closes the file.
func (w *Writer) Close() error {
	doc := gpxDoc{
		Version: "1.1",
		Creator: "flightsim",
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Trk: gpxTrack{
			Name: w.name,
			Seg:  gpxSegment{Points: w.pts},
		},
	}

	if _, err := io.WriteString(w.out, xml.Header); err != nil {
		w.out.Close()
		return fmt.Errorf("gpx: %w", err)
	}
	enc := xml.NewEncoder(w.out)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		w.out.Close()
		return fmt.Errorf("gpx: %w", err)
	}
	if err := w.out.Close(); err != nil {
		return fmt.Errorf("gpx: %w", err)
	}
	return nil
}
