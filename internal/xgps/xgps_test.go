package xgps

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestDatagram_Layout(t *testing.T) {
	got := string(Datagram(47.449, -122.309, 433, 178.5, 120))
	want := "XGPSSimulator,-122.30900000,47.44900000,131.98,178.50,61.73"
	if got != want {
		t.Fatalf("datagram=%q want %q", got, want)
	}
}

func TestDatagram_AltitudeIsFeetTimes03048(t *testing.T) {
	cases := []float64{0, 1, 433, 8500, 35000.5}
	for _, altFeet := range cases {
		fields := strings.Split(string(Datagram(0, 0, altFeet, 0, 0)), ",")
		if len(fields) != 6 {
			t.Fatalf("fields=%d want 6", len(fields))
		}
		want := fmt.Sprintf("%.2f", altFeet*0.3048)
		if fields[3] != want {
			t.Fatalf("alt field=%q want %q", fields[3], want)
		}
	}
}

func TestDatagram_SpeedIsKnotsTimes0514444(t *testing.T) {
	fields := strings.Split(string(Datagram(0, 0, 0, 0, 120)), ",")
	got, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		t.Fatalf("speed field %q: %v", fields[5], err)
	}
	if got != 61.73 {
		t.Fatalf("speed=%v want 61.73", got)
	}
}

func TestDatagram_LonBeforeLat(t *testing.T) {
	fields := strings.Split(string(Datagram(10, 20, 0, 0, 0)), ",")
	if fields[1] != "20.00000000" || fields[2] != "10.00000000" {
		t.Fatalf("lon/lat order wrong: %v", fields[1:3])
	}
}
