package airportdb

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// record is one CSV row with header-name access, DictReader style.
type record struct {
	cols map[string]int
	row  []string
}

func (r record) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.row) {
		return ""
	}
	return r.row[i]
}

// forEachRecord streams the CSV at path, calling fn once per data row.
// Any error from fn aborts the walk, as does a header missing one of
// the required columns.
func forEachRecord(path string, required []string, fn func(rec record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("empty file")
	}
	if err != nil {
		return err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("missing %q column", name)
		}
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(record{cols: cols, row: rec}); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
	}
}

func loadAirports(db *sql.DB, path string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO airports VALUES (?,?,?,?,?,?,?,?,?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	required := []string{
		"ident", "name", "iata_code", "latitude_deg", "longitude_deg",
		"elevation_ft", "local_code", "gps_code", "icao_code",
	}
	count := 0
	err = forEachRecord(path, required, func(rec record) error {
		lat, err := nullFloat(rec.get("latitude_deg"), "latitude_deg")
		if err != nil {
			return err
		}
		lon, err := nullFloat(rec.get("longitude_deg"), "longitude_deg")
		if err != nil {
			return err
		}
		elev, err := nullInt(rec.get("elevation_ft"), "elevation_ft")
		if err != nil {
			return err
		}

		_, err = stmt.Exec(
			rec.get("ident"),
			rec.get("name"),
			nullText(rec.get("iata_code")),
			lat,
			lon,
			elev,
			nullText(rec.get("local_code")),
			nullText(rec.get("gps_code")),
			nullText(rec.get("icao_code")),
		)
		if err != nil {
			return fmt.Errorf("insert airport %q: %w", rec.get("ident"), err)
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, tx.Commit()
}

func loadRunways(db *sql.DB, path string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO runways VALUES (?,?,?,?,?,?,?,?,?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	required := []string{"airport_ident", "length_ft", "width_ft"}
	for _, side := range []string{"le", "he"} {
		required = append(required,
			side+"_ident", side+"_latitude_deg", side+"_longitude_deg",
			side+"_elevation_ft", side+"_heading_degT", side+"_displaced_threshold_ft")
	}
	count := 0
	err = forEachRecord(path, required, func(rec record) error {
		// Each input row describes both runway ends (le_*/he_*); rows
		// missing end coordinates or idents, or carrying the placeholder
		// ident "XX", are skipped entirely.
		if rec.get("le_latitude_deg") == "" || rec.get("le_longitude_deg") == "" ||
			rec.get("he_latitude_deg") == "" || rec.get("he_longitude_deg") == "" {
			return nil
		}
		if rec.get("le_ident") == "" || rec.get("he_ident") == "" {
			return nil
		}
		if rec.get("le_ident") == "XX" || rec.get("he_ident") == "XX" {
			return nil
		}

		for _, side := range []string{"le", "he"} {
			if err := insertRunwayEnd(stmt, rec, side); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, tx.Commit()
}

func insertRunwayEnd(stmt *sql.Stmt, rec record, side string) error {
	ident := rec.get(side + "_ident")

	length, err := nullInt(rec.get("length_ft"), "length_ft")
	if err != nil {
		return err
	}
	width, err := nullInt(rec.get("width_ft"), "width_ft")
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(rec.get(side+"_latitude_deg"), 64)
	if err != nil {
		return fmt.Errorf("bad %s_latitude_deg %q", side, rec.get(side+"_latitude_deg"))
	}
	lon, err := strconv.ParseFloat(rec.get(side+"_longitude_deg"), 64)
	if err != nil {
		return fmt.Errorf("bad %s_longitude_deg %q", side, rec.get(side+"_longitude_deg"))
	}
	elev, err := nullInt(rec.get(side+"_elevation_ft"), side+"_elevation_ft")
	if err != nil {
		return err
	}
	heading, err := nullFloat(rec.get(side+"_heading_degT"), side+"_heading_degT")
	if err != nil {
		return err
	}

	// Missing displaced threshold is stored as 0, not NULL.
	displaced := 0
	if s := rec.get(side + "_displaced_threshold_ft"); s != "" {
		displaced, err = strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("bad %s_displaced_threshold_ft %q", side, s)
		}
	}

	_, err = stmt.Exec(
		rec.get("airport_ident"),
		ident,
		length,
		width,
		lat,
		lon,
		elev,
		heading,
		displaced,
	)
	if err != nil {
		return fmt.Errorf("insert runway %s/%s: %w", rec.get("airport_ident"), ident, err)
	}
	return nil
}

func nullText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(s, field string) (any, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad %s %q", field, s)
	}
	return v, nil
}

func nullInt(s, field string) (any, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("bad %s %q", field, s)
	}
	return v, nil
}
