// Package airportdb builds a SQLite reference database from the
// ourairports.com airports and runways CSV exports.
package airportdb

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Config names the inputs and output of one database build. It is
// passed explicitly; there is no process-wide argument state.
type Config struct {
	AirportsCSV string
	RunwaysCSV  string
	DBPath      string

	// Log receives progress lines. Defaults to the standard logger.
	Log *log.Logger
}

// Stats summarizes a completed build. Airports counts rows remaining
// after the orphan prune.
type Stats struct {
	Airports        int
	Runways         int
	RemovedAirports int
}

const createAirportsSQL = `
CREATE TABLE airports (
	ident TEXT PRIMARY KEY,
	name TEXT,
	iata_code TEXT,
	latitude_deg REAL,
	longitude_deg REAL,
	elevation_ft INTEGER,
	local_code TEXT,
	gps_code TEXT,
	icao_code TEXT
)`

const createRunwaysSQL = `
CREATE TABLE runways (
	airport_ident TEXT,
	ident TEXT,
	length_ft INTEGER,
	width_ft INTEGER,
	latitude_deg REAL,
	longitude_deg REAL,
	elevation_ft INTEGER,
	heading_degT REAL,
	displaced_threshold_ft INTEGER,
	PRIMARY KEY (airport_ident, ident)
)`

// Create builds a fresh database at cfg.DBPath, replacing any existing
// file: both tables, their lookup indexes, and a prune pass removing
// airports with no runways.
func Create(cfg Config) (Stats, error) {
	if cfg.DBPath == "" {
		cfg.DBPath = "aviation.db"
	}
	logf := logger(cfg.Log)

	if _, err := os.Stat(cfg.DBPath); err == nil {
		if err := os.Remove(cfg.DBPath); err != nil {
			return Stats{}, fmt.Errorf("remove existing database: %w", err)
		}
		logf("removed existing database: %s", cfg.DBPath)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createAirportsSQL); err != nil {
		return Stats{}, fmt.Errorf("create airports table: %w", err)
	}
	if _, err := db.Exec(createRunwaysSQL); err != nil {
		return Stats{}, fmt.Errorf("create runways table: %w", err)
	}

	logf("loading airports from %s", cfg.AirportsCSV)
	loaded, err := loadAirports(db, cfg.AirportsCSV)
	if err != nil {
		return Stats{}, fmt.Errorf("airports %s: %w", cfg.AirportsCSV, err)
	}
	logf("loaded %d airports", loaded)

	logf("loading runways from %s", cfg.RunwaysCSV)
	loaded, err = loadRunways(db, cfg.RunwaysCSV)
	if err != nil {
		return Stats{}, fmt.Errorf("runways %s: %w", cfg.RunwaysCSV, err)
	}
	logf("loaded %d runway ends", loaded)

	if err := createIndexes(db); err != nil {
		return Stats{}, err
	}

	removed, err := pruneOrphanAirports(db)
	if err != nil {
		return Stats{}, err
	}
	logf("removed %d airports without runways", removed)

	if _, err := db.Exec("VACUUM"); err != nil {
		return Stats{}, fmt.Errorf("vacuum: %w", err)
	}

	stats := Stats{RemovedAirports: removed}
	if err := db.QueryRow("SELECT COUNT(*) FROM airports").Scan(&stats.Airports); err != nil {
		return Stats{}, fmt.Errorf("count airports: %w", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM runways").Scan(&stats.Runways); err != nil {
		return Stats{}, fmt.Errorf("count runways: %w", err)
	}
	return stats, nil
}

func createIndexes(db *sql.DB) error {
	if _, err := db.Exec("CREATE INDEX idx_runways_airport_ident ON runways(airport_ident)"); err != nil {
		return fmt.Errorf("index runways: %w", err)
	}
	for _, col := range []string{"iata_code", "local_code", "gps_code", "icao_code"} {
		stmt := fmt.Sprintf("CREATE INDEX idx_airports_%s ON airports(%s)", col, col)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("index airports.%s: %w", col, err)
		}
	}
	return nil
}

func pruneOrphanAirports(db *sql.DB) (int, error) {
	res, err := db.Exec(`
		DELETE FROM airports
		WHERE ident NOT IN (SELECT DISTINCT airport_ident FROM runways)`)
	if err != nil {
		return 0, fmt.Errorf("prune airports: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune airports: %w", err)
	}
	return int(n), nil
}

func logger(l *log.Logger) func(format string, args ...any) {
	if l != nil {
		return l.Printf
	}
	return log.Printf
}
