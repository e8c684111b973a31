// Package dataset provides labeled numeric matrices and column statistics.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidInput is returned for malformed input: empty or ragged data,
// non-finite entries, label mismatches, or operations applied to degenerate
// columns. Returned errors wrap this sentinel; match with errors.Is.
var ErrInvalidInput = errors.New("dataset: invalid input")

// Matrix represents a rectangular numeric dataset with labeled columns.
// Each entry of Data is one observation (row); Labels names the columns.
type Matrix struct {
	Labels []string
	Data   [][]float64
}

// New creates a matrix from rows, generating column labels x1..xc.
func New(data [][]float64) (*Matrix, error) {
	return NewWithLabels(nil, data)
}

// NewWithLabels creates a matrix with explicit column labels.
// The data is validated before any numeric work: it must have at least one
// row and one column, all rows must have the same length, and every entry
// must be finite. The rows are copied; the caller keeps ownership of data.
func NewWithLabels(labels []string, data [][]float64) (*Matrix, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("dataset: no rows: %w", ErrInvalidInput)
	}

	cols := len(data[0])
	if cols == 0 {
		return nil, fmt.Errorf("dataset: no columns: %w", ErrInvalidInput)
	}

	rows := make([][]float64, len(data))
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("dataset: row %d has %d values, expected %d: %w",
				i, len(row), cols, ErrInvalidInput)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("dataset: non-finite value at row %d, column %d: %w",
					i, j, ErrInvalidInput)
			}
		}
		rows[i] = make([]float64, cols)
		copy(rows[i], row)
	}

	if labels == nil {
		labels = make([]string, cols)
		for j := range labels {
			labels[j] = fmt.Sprintf("x%d", j+1)
		}
	} else {
		if len(labels) != cols {
			return nil, fmt.Errorf("dataset: %d labels for %d columns: %w",
				len(labels), cols, ErrInvalidInput)
		}
		labels = append([]string(nil), labels...)
	}

	return &Matrix{Labels: labels, Data: rows}, nil
}

// Rows returns the number of observations.
func (m *Matrix) Rows() int {
	return len(m.Data)
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return len(m.Labels)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, len(m.Data[i]))
	copy(row, m.Data[i])
	return row
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) []float64 {
	col := make([]float64, len(m.Data))
	for i, row := range m.Data {
		col[i] = row[j]
	}
	return col
}

// ColumnByLabel returns a copy of the column with the given label.
func (m *Matrix) ColumnByLabel(label string) ([]float64, error) {
	for j, l := range m.Labels {
		if l == label {
			return m.Column(j), nil
		}
	}
	return nil, fmt.Errorf("dataset: unknown column %q: %w", label, ErrInvalidInput)
}

// Clone creates a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	labels := make([]string, len(m.Labels))
	copy(labels, m.Labels)

	data := make([][]float64, len(m.Data))
	for i, row := range m.Data {
		data[i] = make([]float64, len(row))
		copy(data[i], row)
	}

	return &Matrix{Labels: labels, Data: data}
}

// Mean calculates the arithmetic mean of column j.
func (m *Matrix) Mean(j int) float64 {
	sum := 0.0
	for _, row := range m.Data {
		sum += row[j]
	}
	return sum / float64(len(m.Data))
}

// Variance calculates the sample variance (n-1 denominator) of column j.
// Returns 0 for matrices with fewer than 2 rows.
func (m *Matrix) Variance(j int) float64 {
	if len(m.Data) < 2 {
		return 0
	}
	mean := m.Mean(j)
	sumSq := 0.0
	for _, row := range m.Data {
		diff := row[j] - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(m.Data)-1)
}

// Std calculates the sample standard deviation of column j.
func (m *Matrix) Std(j int) float64 {
	return math.Sqrt(m.Variance(j))
}

// Min returns the minimum value in column j.
func (m *Matrix) Min(j int) float64 {
	min := m.Data[0][j]
	for _, row := range m.Data[1:] {
		if row[j] < min {
			min = row[j]
		}
	}
	return min
}

// Max returns the maximum value in column j.
func (m *Matrix) Max(j int) float64 {
	max := m.Data[0][j]
	for _, row := range m.Data[1:] {
		if row[j] > max {
			max = row[j]
		}
	}
	return max
}

// Median returns the median value of column j.
func (m *Matrix) Median(j int) float64 {
	sorted := m.Column(j)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
