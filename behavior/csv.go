package behavior

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV loads behavioral events from a CSV file with rows of the form
// label,timestamp (events) or label,start,end (intervals). Two-field
// rows become events, three-field rows become intervals. A header row
// starting with "label" is skipped.
func LoadCSV(filename string) (*Set, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file)
}

// LoadCSVFromReader loads behavioral events from CSV data.
func LoadCSVFromReader(r io.Reader) (*Set, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("behavior: reading csv: %w", err)
	}

	set := NewSet()

	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("behavior: row %d: want label,timestamp or label,start,end", i+1)
		}

		label := strings.TrimSpace(row[0])
		if i == 0 && strings.EqualFold(label, "label") {
			continue
		}

		first, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("behavior: row %d: %w", i+1, err)
		}

		if len(row) == 2 {
			set.AddEvents(label, first)
			continue
		}

		second, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("behavior: row %d: %w", i+1, err)
		}

		set.AddIntervals(label, Interval{Start: first, End: second})
	}

	return set, nil
}
