// Package pca implements principal component analysis over labeled matrices.
package pca

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gopca/dataset"
	"github.com/sartorproj/gopca/stats"
)

// ErrNumericalInstability is returned when the eigendecomposition fails to
// converge or produces a materially negative eigenvalue. Covariance matrices
// are positive semi-definite, so either signals a computation error.
var ErrNumericalInstability = errors.New("pca: numerical instability")

// negEigenTol is the threshold below which a negative eigenvalue is treated
// as a computation error rather than rounding noise.
const negEigenTol = -1e-10

// Result holds the output of a principal component analysis.
//
// Loadings has one row per original feature (in the order of Features) and
// one column per component; column j is the unit-length eigenvector of the
// j-th largest eigenvalue. Scores projects each input observation onto the
// components. ExplainedVariance[j] is Eigenvalues[j] divided by the total,
// so the ratios are descending, non-negative, and sum to 1.
//
// Eigenvectors are unique only up to sign; the sign here is fixed so that
// the largest-magnitude entry of each loading column is positive.
type Result struct {
	Features          []string        // labels of the fitted columns
	Loadings          *dataset.Matrix // feature rows, PC1..PCp columns
	Scores            *dataset.Matrix // observation rows, PC1..PCp columns
	Eigenvalues       []float64
	ExplainedVariance []float64
	Means             []float64
	Stds              []float64 // nil when Scaled is false
	Scaled            bool
}

// Compute performs a principal component analysis of m. With scale true the
// columns are standardized first (correlation-based PCA); otherwise they are
// only centered (covariance-based PCA). The matrix must have more rows than
// columns.
//
// Components with equal eigenvalues keep the order the decomposition routine
// returned them in; that order is not semantically significant.
func Compute(m *dataset.Matrix, scale bool) (*Result, error) {
	n, p := m.Rows(), m.Cols()
	if n <= p {
		return nil, fmt.Errorf("pca: need more rows than columns, got %dx%d: %w",
			n, p, dataset.ErrInvalidInput)
	}

	var (
		centered [][]float64
		means    []float64
		stds     []float64
	)
	if scale {
		std, err := stats.Standardize(m)
		if err != nil {
			return nil, err
		}
		centered = std.Matrix.Data
		means = std.Means
		stds = std.Stds
	} else {
		means = make([]float64, p)
		for j := 0; j < p; j++ {
			means[j] = m.Mean(j)
		}
		centered = make([][]float64, n)
		for i, row := range m.Data {
			c := make([]float64, p)
			for j, v := range row {
				c[j] = v - means[j]
			}
			centered[i] = c
		}
	}

	// Sample covariance of the centered (or standardized) data.
	cov := make([]float64, p*p)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sum := 0.0
			for r := 0; r < n; r++ {
				sum += centered[r][i] * centered[r][j]
			}
			sum /= float64(n - 1)
			cov[i*p+j] = sum
			cov[j*p+i] = sum
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(p, cov), true); !ok {
		return nil, fmt.Errorf("pca: eigendecomposition did not converge: %w",
			ErrNumericalInstability)
	}
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	eigenvalues := make([]float64, p)
	loadings := make([][]float64, p)
	for i := range loadings {
		loadings[i] = make([]float64, p)
	}

	for j := 0; j < p; j++ {
		src := p - 1 - j // largest eigenvalue first
		v := vals[src]
		if v < negEigenTol {
			return nil, fmt.Errorf("pca: negative eigenvalue %g: %w", v, ErrNumericalInstability)
		}
		if v < 0 {
			v = 0
		}
		eigenvalues[j] = v

		// Fix the sign so the largest-magnitude loading is positive.
		pivot := 0
		for i := 1; i < p; i++ {
			if math.Abs(vecs.At(i, src)) > math.Abs(vecs.At(pivot, src)) {
				pivot = i
			}
		}
		sign := 1.0
		if vecs.At(pivot, src) < 0 {
			sign = -1
		}
		for i := 0; i < p; i++ {
			loadings[i][j] = sign * vecs.At(i, src)
		}
	}

	total := floats.Sum(eigenvalues)
	if total == 0 {
		return nil, fmt.Errorf("pca: data has no variance: %w", dataset.ErrInvalidInput)
	}
	ratios := make([]float64, p)
	for j, ev := range eigenvalues {
		ratios[j] = ev / total
	}

	scores := project(centered, loadings)
	pcs := componentLabels(p)

	features := make([]string, p)
	copy(features, m.Labels)

	return &Result{
		Features:          features,
		Loadings:          &dataset.Matrix{Labels: pcs, Data: loadings},
		Scores:            &dataset.Matrix{Labels: pcs, Data: scores},
		Eigenvalues:       eigenvalues,
		ExplainedVariance: ratios,
		Means:             means,
		Stds:              stds,
		Scaled:            scale,
	}, nil
}

// Transform projects new observations onto the fitted components using the
// stored centering (and scaling, for correlation-based results).
func (r *Result) Transform(m *dataset.Matrix) (*dataset.Matrix, error) {
	p := len(r.Features)
	if m.Cols() != p {
		return nil, fmt.Errorf("pca: transform expects %d columns, got %d: %w",
			p, m.Cols(), dataset.ErrInvalidInput)
	}

	centered := make([][]float64, m.Rows())
	for i, row := range m.Data {
		c := make([]float64, p)
		for j, v := range row {
			c[j] = v - r.Means[j]
			if r.Scaled {
				c[j] /= r.Stds[j]
			}
		}
		centered[i] = c
	}

	scores := project(centered, r.Loadings.Data)
	return &dataset.Matrix{Labels: componentLabels(p), Data: scores}, nil
}

// Reconstruct maps the scores back to the original feature space,
// recovering the fitted matrix up to floating-point error.
func (r *Result) Reconstruct() (*dataset.Matrix, error) {
	n := r.Scores.Rows()
	p := len(r.Features)

	S := denseOf(r.Scores.Data)
	L := denseOf(r.Loadings.Data)
	var X mat.Dense
	X.Mul(S, L.T())

	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, p)
		for j := 0; j < p; j++ {
			v := X.At(i, j)
			if r.Scaled {
				v *= r.Stds[j]
			}
			row[j] = v + r.Means[j]
		}
		data[i] = row
	}

	labels := make([]string, p)
	copy(labels, r.Features)

	return &dataset.Matrix{Labels: labels, Data: data}, nil
}

// CumulativeVariance returns the running sum of the explained-variance
// ratios, one entry per component.
func (r *Result) CumulativeVariance() []float64 {
	cum := make([]float64, len(r.ExplainedVariance))
	sum := 0.0
	for j, ratio := range r.ExplainedVariance {
		sum += ratio
		cum[j] = sum
	}
	return cum
}

// project multiplies the centered data by the loadings, one score row per
// observation.
func project(centered, loadings [][]float64) [][]float64 {
	X := denseOf(centered)
	L := denseOf(loadings)
	var S mat.Dense
	S.Mul(X, L)

	n := len(centered)
	p := len(loadings)
	scores := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, p)
		for j := 0; j < p; j++ {
			row[j] = S.At(i, j)
		}
		scores[i] = row
	}
	return scores
}

// denseOf flattens rows into a gonum dense matrix.
func denseOf(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(r, c, flat)
}

// componentLabels returns PC1..PCp.
func componentLabels(p int) []string {
	labels := make([]string, p)
	for j := range labels {
		labels[j] = fmt.Sprintf("PC%d", j+1)
	}
	return labels
}
