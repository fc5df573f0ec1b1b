package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeTempConfig(t, `
route: waypoints.csv
speed_kt: 250
interval: 500ms
udp:
  host: 192.168.1.10
  port: 4000
gpx:
  path: flight.gpx
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Route != "waypoints.csv" || cfg.SpeedKt != 250 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Interval != 500*time.Millisecond {
		t.Fatalf("interval=%s want 500ms", cfg.Interval)
	}
	if cfg.UDP.Host != "192.168.1.10" || cfg.UDP.Port != 4000 {
		t.Fatalf("udp=%+v", cfg.UDP)
	}
	if cfg.GPX.Path != "flight.gpx" {
		t.Fatalf("gpx=%+v", cfg.GPX)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeTempConfig(t, "route: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected YAML parse error")
	}
}

func TestDefaultAndValidate_Defaults(t *testing.T) {
	cfg := Config{Route: "waypoints.csv"}
	if err := DefaultAndValidate(&cfg); err != nil {
		t.Fatalf("DefaultAndValidate() error: %v", err)
	}
	if cfg.SpeedKt != 120 {
		t.Fatalf("speed_kt=%v want 120", cfg.SpeedKt)
	}
	if cfg.Interval != 1*time.Second {
		t.Fatalf("interval=%s want 1s", cfg.Interval)
	}
	if cfg.UDP.Port != 49002 {
		t.Fatalf("udp.port=%d want 49002", cfg.UDP.Port)
	}
}

func TestDefaultAndValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"NoRoute", Config{}, "route is required"},
		{"NegativeSpeed", Config{Route: "r", SpeedKt: -1}, "speed_kt must be > 0"},
		{"NegativeInterval", Config{Route: "r", Interval: -time.Second}, "interval must be > 0"},
		{"PortTooLarge", Config{Route: "r", UDP: UDPConfig{Port: 70000}}, "udp.port must be in 1..65535"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			requireErrEq(t, DefaultAndValidate(&cfg), tc.want)
		})
	}
}
