package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ClassColumn string // Column name holding class labels (optional, needs header)
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a labeled matrix from a CSV file. When opts.ClassColumn
// names a column, its values are split out as per-row class labels.
func LoadCSV(filename string, opts *CSVOptions) (*Matrix, []string, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a labeled matrix from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Matrix, []string, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	// Skipped preamble rows may be narrower than the data; rectangularity
	// is enforced by NewWithLabels instead.
	reader.FieldsPerRecord = -1

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	var labels []string
	classIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, nil, err
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if opts.ClassColumn != "" && h == opts.ClassColumn {
				classIdx = i
				continue
			}
			labels = append(labels, h)
		}
		if opts.ClassColumn != "" && classIdx == -1 {
			return nil, nil, fmt.Errorf("dataset: class column %q not found in header: %w",
				opts.ClassColumn, ErrInvalidInput)
		}
	} else if opts.ClassColumn != "" {
		return nil, nil, fmt.Errorf("dataset: class column requires a header row: %w", ErrInvalidInput)
	}

	var data [][]float64
	var classes []string

	for rowNum := 0; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		row := make([]float64, 0, len(record))
		for i, field := range record {
			field = strings.TrimSpace(strings.Trim(field, "\""))
			if i == classIdx {
				classes = append(classes, field)
				continue
			}
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("dataset: row %d, column %d: cannot parse %q: %w",
					rowNum, i, field, ErrInvalidInput)
			}
			row = append(row, val)
		}
		data = append(data, row)
	}

	m, err := NewWithLabels(labels, data)
	if err != nil {
		return nil, nil, err
	}
	return m, classes, nil
}

// SaveCSV saves a labeled matrix to a CSV file. When classes is non-empty
// it is written as a leading column named classColumn (default "class").
func SaveCSV(m *Matrix, classes []string, filename, classColumn string) error {
	if len(classes) > 0 && len(classes) != m.Rows() {
		return fmt.Errorf("dataset: %d class labels for %d rows: %w",
			len(classes), m.Rows(), ErrInvalidInput)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	// Write header
	if len(classes) > 0 {
		if classColumn == "" {
			classColumn = "class"
		}
		writer.WriteString(classColumn)
		writer.WriteString(",")
	}
	writer.WriteString(strings.Join(m.Labels, ","))
	writer.WriteString("\n")

	// Write data
	for i, row := range m.Data {
		if len(classes) > 0 {
			writer.WriteString(classes[i])
			writer.WriteString(",")
		}
		for j, v := range row {
			if j > 0 {
				writer.WriteString(",")
			}
			writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return nil
}
