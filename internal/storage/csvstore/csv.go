// Package csvstore implements the repositories over tabular CSV files.
// Every table is read fully at open; the city table is the only one
// written back, and it is rewritten whole on flush.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readTable reads a CSV file with a header row and returns a
// column-name index plus the data rows.
func readTable(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, validate per column below
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("read %s: empty file", path)
	}

	cols := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return cols, all[1:], nil
}

func field(cols map[string]int, row []string, name string) (string, error) {
	i, ok := cols[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	if i >= len(row) {
		return "", fmt.Errorf("row too short for column %q", name)
	}
	return strings.TrimSpace(row[i]), nil
}

func floatField(cols map[string]int, row []string, name string) (float64, error) {
	s, err := field(cols, row, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

// writeTable rewrites path atomically: write a sibling temp file, then
// rename it over the original.
func writeTable(path string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".csvstore-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
