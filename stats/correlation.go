package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/sartorproj/gopca/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix over the columns of
// a dataset. The diagonal is exactly 1 and every entry lies in [-1, 1].
type CorrMatrix struct {
	Labels []string
	Values [][]float64
}

// Dim returns the number of columns the matrix was computed over.
func (c *CorrMatrix) Dim() int {
	return len(c.Labels)
}

// At returns the correlation between columns i and j.
func (c *CorrMatrix) At(i, j int) float64 {
	return c.Values[i][j]
}

// Pair names two columns and their correlation.
type Pair struct {
	I, J           int
	LabelI, LabelJ string
	R              float64
}

// StrongestPairs returns the off-diagonal column pairs ranked by |r|
// descending, truncated to limit (all pairs when limit <= 0).
func (c *CorrMatrix) StrongestPairs(limit int) []Pair {
	var pairs []Pair
	for i := 0; i < c.Dim(); i++ {
		for j := i + 1; j < c.Dim(); j++ {
			pairs = append(pairs, Pair{
				I: i, J: j,
				LabelI: c.Labels[i], LabelJ: c.Labels[j],
				R: c.Values[i][j],
			})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return math.Abs(pairs[a].R) > math.Abs(pairs[b].R)
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// Correlation computes the pairwise Pearson correlation matrix of the
// columns of m. Every column must have non-zero variance.
func Correlation(m *dataset.Matrix) (*CorrMatrix, error) {
	n, p := m.Rows(), m.Cols()
	if n < 2 {
		return nil, fmt.Errorf("stats: correlation requires at least 2 rows, got %d: %w",
			n, dataset.ErrInvalidInput)
	}
	if p < 2 {
		return nil, fmt.Errorf("stats: correlation requires at least 2 columns, got %d: %w",
			p, dataset.ErrInvalidInput)
	}

	centered, _, sumSq := centerColumns(m)
	for j, ss := range sumSq {
		if ss == 0 {
			return nil, fmt.Errorf("stats: column %q has zero variance: %w",
				m.Labels[j], dataset.ErrInvalidInput)
		}
	}

	values := make([][]float64, p)
	for i := range values {
		values[i] = make([]float64, p)
		values[i][i] = 1
	}

	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			sum := 0.0
			for r := 0; r < n; r++ {
				sum += centered[r][i] * centered[r][j]
			}
			v := sum / math.Sqrt(sumSq[i]*sumSq[j])
			// Guard against rounding drift past the mathematical bounds.
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			values[i][j] = v
			values[j][i] = v
		}
	}

	labels := make([]string, p)
	copy(labels, m.Labels)

	return &CorrMatrix{Labels: labels, Values: values}, nil
}

// CovMatrix is a symmetric sample covariance matrix over the columns of a
// dataset.
type CovMatrix struct {
	Labels []string
	Values [][]float64
}

// Dim returns the number of columns the matrix was computed over.
func (c *CovMatrix) Dim() int {
	return len(c.Labels)
}

// At returns the covariance between columns i and j.
func (c *CovMatrix) At(i, j int) float64 {
	return c.Values[i][j]
}

// Covariance computes the sample covariance matrix (n-1 denominator) of
// the columns of m.
func Covariance(m *dataset.Matrix) (*CovMatrix, error) {
	n, p := m.Rows(), m.Cols()
	if n < 2 {
		return nil, fmt.Errorf("stats: covariance requires at least 2 rows, got %d: %w",
			n, dataset.ErrInvalidInput)
	}

	centered, _, _ := centerColumns(m)

	values := make([][]float64, p)
	for i := range values {
		values[i] = make([]float64, p)
	}

	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sum := 0.0
			for r := 0; r < n; r++ {
				sum += centered[r][i] * centered[r][j]
			}
			v := sum / float64(n-1)
			values[i][j] = v
			values[j][i] = v
		}
	}

	labels := make([]string, p)
	copy(labels, m.Labels)

	return &CovMatrix{Labels: labels, Values: values}, nil
}

// centerColumns subtracts the per-column mean from every entry, returning
// the centered rows, the means, and the per-column centered sum of squares.
func centerColumns(m *dataset.Matrix) (centered [][]float64, means, sumSq []float64) {
	n, p := m.Rows(), m.Cols()

	means = make([]float64, p)
	for j := 0; j < p; j++ {
		means[j] = m.Mean(j)
	}

	centered = make([][]float64, n)
	sumSq = make([]float64, p)
	for i, row := range m.Data {
		c := make([]float64, p)
		for j, v := range row {
			d := v - means[j]
			c[j] = d
			sumSq[j] += d * d
		}
		centered[i] = c
	}

	return centered, means, sumSq
}
