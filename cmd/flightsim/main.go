package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"flightsim/internal/config"
	"flightsim/internal/route"
	"flightsim/internal/sim"
	"flightsim/internal/telemetry"
	"flightsim/internal/tracklog"
	"flightsim/internal/udp"
)

func main() {
	var (
		configPath string
		routePath  string
		speedKt    float64
		destHost   string
		gpxPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config (optional)")
	flag.StringVar(&routePath, "route", "", "CSV file with waypoints (Waypoint,Latitude,Longitude,Altitude)")
	flag.Float64Var(&speedKt, "speed", 0, "Ground speed in knots (default 120)")
	flag.StringVar(&destHost, "dest", "", "Destination host for XGPS UDP datagrams (optional)")
	flag.StringVar(&gpxPath, "gpx", "", "Write a GPX track log to this path (optional)")
	flag.Parse()

	var cfg config.Config
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = c
	}

	// Flags override the config file.
	if routePath != "" {
		cfg.Route = routePath
	}
	if speedKt != 0 {
		cfg.SpeedKt = speedKt
	}
	if destHost != "" {
		cfg.UDP.Host = destHost
	}
	if gpxPath != "" {
		cfg.GPX.Path = gpxPath
	}
	if err := config.DefaultAndValidate(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("flightsim: %v", err)
	}
}

// run does the actual work so deferred closes survive failures (main
// exits through log.Fatalf, which skips defers).
func run(cfg config.Config) error {
	waypoints, err := route.Load(cfg.Route)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	console := telemetry.NewConsole(os.Stdout)
	sinks := []sim.Sink{console}

	if cfg.UDP.Host != "" {
		dest := net.JoinHostPort(cfg.UDP.Host, strconv.Itoa(cfg.UDP.Port))
		sender, err := udp.NewSender(dest)
		if err != nil {
			return err
		}
		defer sender.Close()
		sinks = append(sinks, &telemetry.XGPS{Sender: sender})
		log.Printf("sending XGPS datagrams to %s", dest)
	}

	if cfg.GPX.Path != "" {
		track, err := tracklog.NewWriter(cfg.GPX.Path, "flightsim", time.Now().UTC())
		if err != nil {
			return err
		}
		defer func() {
			if err := track.Close(); err != nil {
				log.Printf("gpx close failed: %v", err)
			}
		}()
		sinks = append(sinks, track)
	}

	names := make([]string, len(waypoints))
	for i, wp := range waypoints {
		names[i] = wp.Name
	}
	console.WriteBanner(names, cfg.SpeedKt)

	flight := &sim.Flight{
		Waypoints: waypoints,
		GroundKt:  cfg.SpeedKt,
		Clock:     sim.IntervalClock{Interval: cfg.Interval},
		Sinks:     sinks,
	}
	if err := flight.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("interrupted")
			return nil
		}
		return err
	}
	return nil
}
