package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV reads samples from a CSV file.
//
// CSV Format:
//
//	x0,x1,...,y0,y1,...
//	0,1,...,1,...
//
// The first row is a header and is skipped. The first inputs columns of each
// record form the input vector; the remaining columns form the target.
func LoadCSV(path string, inputs int) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, inputs)
}

// ReadCSV parses samples from r using the LoadCSV format.
func ReadCSV(r io.Reader, inputs int) ([]Sample, error) {
	if inputs <= 0 {
		return nil, fmt.Errorf("input column count must be positive, got %d", inputs)
	}

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file is empty or missing header")
	}

	// Skip header row
	records = records[1:]

	samples := make([]Sample, len(records))
	for i, record := range records {
		if len(record) <= inputs {
			return nil, fmt.Errorf("row %d: got %d columns, want more than %d", i+1, len(record), inputs)
		}
		values := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			values[j] = v
		}
		samples[i] = Sample{Input: values[:inputs:inputs], Target: values[inputs:]}
	}
	return samples, nil
}
