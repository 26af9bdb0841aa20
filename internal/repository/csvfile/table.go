// Package csvfile persists tracker records and credentials as delimited
// tabular files: a header row plus one row per record. Every operation loads
// the whole file, mutates in memory, and rewrites the whole file.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// table is one loaded delimited file.
type table struct {
	header []string
	rows   [][]string
}

// colIndex maps column names to their position in the header.
func (t *table) colIndex() map[string]int {
	idx := make(map[string]int, len(t.header))
	for i, col := range t.header {
		idx[col] = i
	}
	return idx
}

// readTable loads a delimited file. A missing or zero-length file yields a
// nil table ("no data yet"); a present but unparseable file is an error.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &table{header: records[0], rows: records[1:]}, nil
}

// writeTable rewrites the whole file. Not atomic: a crash mid-write can
// truncate the file, which is an accepted limitation of the flat-file store.
func writeTable(path string, t *table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(t.rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
