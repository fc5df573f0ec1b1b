// Package route loads waypoint routes from CSV files.
//
// The expected format matches the ourairports-style flight plan export:
// a header row naming Waypoint, Latitude, Longitude and Altitude
// columns (in any order), then one row per waypoint in route order.
package route

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"flightsim/internal/geo"
)

// Waypoint is one named stop on a route. Altitude is in feet.
type Waypoint struct {
	Name    string
	LatDeg  float64
	LonDeg  float64
	AltFeet float64
}

// Fix returns the waypoint position as a geo.Fix.
func (w Waypoint) Fix() geo.Fix {
	return geo.Fix{LatDeg: w.LatDeg, LonDeg: w.LonDeg, AltFeet: w.AltFeet}
}

// Load reads a waypoint CSV from path.
func Load(path string) ([]Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	defer f.Close()

	wps, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("route %s: %w", path, err)
	}
	return wps, nil
}

// Parse reads waypoint rows from r. Any malformed row aborts the whole
// parse; there are no partial results. At least two waypoints are
// required for a route to be flyable.
func Parse(r io.Reader) ([]Waypoint, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, err
	}

	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var wps []Waypoint
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		wp, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		wps = append(wps, wp)
	}

	if len(wps) < 2 {
		return nil, fmt.Errorf("need at least 2 waypoints, got %d", len(wps))
	}
	return wps, nil
}

type columns struct {
	name, lat, lon, alt int
}

func headerIndex(header []string) (columns, error) {
	cols := columns{name: -1, lat: -1, lon: -1, alt: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Waypoint":
			cols.name = i
		case "Latitude":
			cols.lat = i
		case "Longitude":
			cols.lon = i
		case "Altitude":
			cols.alt = i
		}
	}
	for _, c := range []struct {
		idx  int
		name string
	}{
		{cols.name, "Waypoint"},
		{cols.lat, "Latitude"},
		{cols.lon, "Longitude"},
		{cols.alt, "Altitude"},
	} {
		if c.idx == -1 {
			return columns{}, fmt.Errorf("missing %q column", c.name)
		}
	}
	return cols, nil
}

func parseRow(rec []string, cols columns) (Waypoint, error) {
	max := cols.name
	for _, i := range []int{cols.lat, cols.lon, cols.alt} {
		if i > max {
			max = i
		}
	}
	if len(rec) <= max {
		return Waypoint{}, fmt.Errorf("expected at least %d columns, got %d", max+1, len(rec))
	}

	name := strings.TrimSpace(rec[cols.name])
	if name == "" {
		return Waypoint{}, fmt.Errorf("empty waypoint name")
	}

	lat, err := parseDegrees(rec[cols.lat], "latitude", 90)
	if err != nil {
		return Waypoint{}, err
	}
	lon, err := parseDegrees(rec[cols.lon], "longitude", 180)
	if err != nil {
		return Waypoint{}, err
	}
	alt, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.alt]), 64)
	if err != nil {
		return Waypoint{}, fmt.Errorf("bad altitude %q", rec[cols.alt])
	}

	return Waypoint{Name: name, LatDeg: lat, LonDeg: lon, AltFeet: alt}, nil
}

func parseDegrees(s, field string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", field, s)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%s %v out of range [-%v, %v]", field, v, limit, limit)
	}
	return v, nil
}
