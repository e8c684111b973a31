// Package stats provides descriptive statistics for labeled numeric matrices.
package stats

import (
	"fmt"

	"github.com/sartorproj/gopca/dataset"
)

// Standardized holds a z-scored matrix together with the column means and
// sample standard deviations used to produce it.
type Standardized struct {
	Matrix *dataset.Matrix
	Means  []float64
	Stds   []float64
}

// Standardize rescales every column to zero mean and unit sample standard
// deviation. A zero-variance column makes the rescaling undefined and is
// rejected rather than silently producing non-finite values.
func Standardize(m *dataset.Matrix) (*Standardized, error) {
	n, p := m.Rows(), m.Cols()
	if n < 2 {
		return nil, fmt.Errorf("stats: standardize requires at least 2 rows, got %d: %w",
			n, dataset.ErrInvalidInput)
	}

	means := make([]float64, p)
	stds := make([]float64, p)
	for j := 0; j < p; j++ {
		means[j] = m.Mean(j)
		stds[j] = m.Std(j)
		if stds[j] == 0 {
			return nil, fmt.Errorf("stats: column %q has zero variance: %w",
				m.Labels[j], dataset.ErrInvalidInput)
		}
	}

	data := make([][]float64, n)
	for i, row := range m.Data {
		z := make([]float64, p)
		for j, v := range row {
			z[j] = (v - means[j]) / stds[j]
		}
		data[i] = z
	}

	labels := make([]string, p)
	copy(labels, m.Labels)

	return &Standardized{
		Matrix: &dataset.Matrix{Labels: labels, Data: data},
		Means:  means,
		Stds:   stds,
	}, nil
}

// Restore reverses the standardization, recovering the original values.
func (s *Standardized) Restore() *dataset.Matrix {
	data := make([][]float64, s.Matrix.Rows())
	for i, row := range s.Matrix.Data {
		orig := make([]float64, len(row))
		for j, z := range row {
			orig[j] = z*s.Stds[j] + s.Means[j]
		}
		data[i] = orig
	}

	labels := make([]string, len(s.Matrix.Labels))
	copy(labels, s.Matrix.Labels)

	return &dataset.Matrix{Labels: labels, Data: data}
}
