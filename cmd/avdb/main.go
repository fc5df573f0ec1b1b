// Command avdb generates a SQLite aviation reference database from the
// ourairports.com airports and runways CSV exports.
package main

import (
	"flag"
	"log"
	"os"

	"flightsim/internal/airportdb"
)

func main() {
	var airports, runways, dbPath string
	flag.StringVar(&airports, "airports", "", "Path to airports CSV file")
	flag.StringVar(&runways, "runways", "", "Path to runways CSV file")
	flag.StringVar(&dbPath, "db", "aviation.db", "Output SQLite database path")
	flag.Parse()

	if airports == "" || runways == "" {
		flag.Usage()
		os.Exit(2)
	}

	stats, err := airportdb.Create(airportdb.Config{
		AirportsCSV: airports,
		RunwaysCSV:  runways,
		DBPath:      dbPath,
	})
	if err != nil {
		log.Fatalf("avdb: %v", err)
	}

	log.Printf("database created: %s", dbPath)
	log.Printf("airports=%d runways=%d removed_without_runways=%d",
		stats.Airports, stats.Runways, stats.RemovedAirports)
}
