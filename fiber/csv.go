package fiber

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for loading recordings from CSV.
type CSVOptions struct {
	TimeColumn    string  // column name for timestamps (default: "time")
	SignalColumn  string  // column name for the signal channel (default: "signal")
	ControlColumn string  // column name for the control channel (default: "control")
	HasHeader     bool    // whether the CSV has a header row (default: true)
	Delimiter     rune    // field delimiter (default: ',')
	GapThreshold  float64 // split into segments where dt exceeds this; 0 = never split
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		TimeColumn:    "time",
		SignalColumn:  "signal",
		ControlColumn: "control",
		HasHeader:     true,
		Delimiter:     ',',
	}
}

// LoadCSV loads session recordings from a CSV file. Rows are split into
// separate recording segments wherever the time delta exceeds
// GapThreshold, matching gated acquisition that stops between trials.
func LoadCSV(filename string, opts *CSVOptions) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads session recordings from CSV data.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Data, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fiber: reading csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, errEmptyRecording
	}

	timeIdx, sigIdx, ctrlIdx := 0, 1, 2

	if opts.HasHeader {
		header := rows[0]
		rows = rows[1:]

		if timeIdx, err = findColumn(header, opts.TimeColumn); err != nil {
			return nil, err
		}
		if sigIdx, err = findColumn(header, opts.SignalColumn); err != nil {
			return nil, err
		}
		if ctrlIdx, err = findColumn(header, opts.ControlColumn); err != nil {
			return nil, err
		}
	}

	var times, signals, controls []float64

	for i, row := range rows {
		t, err := parseField(row, timeIdx)
		if err != nil {
			return nil, fmt.Errorf("fiber: row %d time: %w", i+1, err)
		}

		s, err := parseField(row, sigIdx)
		if err != nil {
			return nil, fmt.Errorf("fiber: row %d signal: %w", i+1, err)
		}

		c, err := parseField(row, ctrlIdx)
		if err != nil {
			return nil, fmt.Errorf("fiber: row %d control: %w", i+1, err)
		}

		times = append(times, t)
		signals = append(signals, s)
		controls = append(controls, c)
	}

	return splitSegments(times, signals, controls, opts.GapThreshold)
}

func splitSegments(times, signals, controls []float64, gap float64) (*Data, error) {
	var recordings []*Recording

	start := 0
	for i := 1; i <= len(times); i++ {
		if i < len(times) && (gap <= 0 || times[i]-times[i-1] <= gap) {
			continue
		}

		rec, err := NewRecording(times[start:i], signals[start:i], controls[start:i])
		if err != nil {
			return nil, err
		}

		recordings = append(recordings, rec)
		start = i
	}

	return NewData(recordings...), nil
}

func findColumn(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("fiber: column %q not found in header %v", name, header)
}

func parseField(row []string, idx int) (float64, error) {
	if idx >= len(row) {
		return 0, fmt.Errorf("missing column %d", idx)
	}

	return strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
}
