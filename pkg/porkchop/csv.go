package porkchop

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cast"

	"github.com/oxygene76/porkchop-client/pkg/ephemeris"
)

// LoadRowsFile reads the porkchop CSV written by the upstream transfer
// sweep from a file.
func LoadRowsFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open porkchop CSV %s: %w", path, err)
	}
	defer f.Close()
	return LoadRows(f)
}

// LoadRows reads porkchop rows from r. The header is mapped by column
// name, so extra columns and reordered columns are fine. Rows whose
// timestamps fail to parse are dropped with a warning rather than
// failing the load; metric cells that fail to parse become NaN and are
// masked later by the reducer.
func LoadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read porkchop CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("porkchop CSV has no data rows")
	}

	cols := make(map[string]int, len(records[0]))
	for idx, name := range records[0] {
		cols[name] = idx
	}
	for _, required := range []string{"depart_utc", "arrive_utc", "feasible"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("porkchop CSV is missing required column %q", required)
		}
	}

	field := func(record []string, name string) (string, bool) {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return "", false
		}
		return record[idx], true
	}
	metricField := func(record []string, name string) float64 {
		raw, ok := field(record, name)
		if !ok {
			return math.NaN()
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}

	var rows []Row
	for i, record := range records[1:] {
		departRaw, _ := field(record, "depart_utc")
		arriveRaw, _ := field(record, "arrive_utc")

		depart, err := ephemeris.ParseEpoch(departRaw)
		if err != nil {
			log.Printf("Warning: skipping row %d: bad depart_utc %q", i+1, departRaw)
			continue
		}
		arrive, err := ephemeris.ParseEpoch(arriveRaw)
		if err != nil {
			log.Printf("Warning: skipping row %d: bad arrive_utc %q", i+1, arriveRaw)
			continue
		}

		feasibleRaw, _ := field(record, "feasible")
		rows = append(rows, Row{
			Depart:   depart.Time(),
			Arrive:   arrive.Time(),
			Feasible: cast.ToBool(feasibleRaw),
			TOFDays:  metricField(record, "tof_days"),
			C3:       metricField(record, "c3_km2_s2"),
			VinfDep:  metricField(record, "vinf_dep_km_s"),
			VinfArr:  metricField(record, "vinf_arr_km_s"),
			DVDep:    metricField(record, "dv_dep_km_s"),
			DVArr:    metricField(record, "dv_arr_km_s"),
			DVTotal:  metricField(record, "dv_total_km_s"),
		})
	}

	return rows, nil
}
