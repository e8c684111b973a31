package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gopca/dataset"
)

func TestCorrelationKnownValues(t *testing.T) {
	// r(a,b) = 0.8 by hand; c is a perfectly linear function of a.
	m := testMatrix(t, []string{"a", "b", "c"}, [][]float64{
		{1, 1, 10},
		{2, 3, 20},
		{3, 2, 30},
		{4, 4, 40},
	})

	corr, err := Correlation(m)
	require.NoError(t, err)
	require.Equal(t, 3, corr.Dim())

	assert.InDelta(t, 0.8, corr.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, corr.At(0, 2), 1e-12)
}

func TestCorrelationAntiCorrelated(t *testing.T) {
	m := testMatrix(t, []string{"up", "down"}, [][]float64{
		{1, 4},
		{2, 3},
		{3, 2},
		{4, 1},
	})

	corr, err := Correlation(m)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, corr.At(0, 1), 1e-12)
}

func TestCorrelationProperties(t *testing.T) {
	m := testMatrix(t, nil, [][]float64{
		{1.2, 50, -3, 0.7},
		{4.8, 20, 12, -1.1},
		{2.2, 85, 4, 2.6},
		{7.1, 10, -8, 0.2},
		{3.3, 65, 1, -2.9},
	})

	corr, err := Correlation(m)
	require.NoError(t, err)

	for i := 0; i < corr.Dim(); i++ {
		assert.Equal(t, 1.0, corr.At(i, i), "diagonal must be exactly 1")
		for j := 0; j < corr.Dim(); j++ {
			assert.Equal(t, corr.At(i, j), corr.At(j, i), "matrix must be symmetric")
			assert.GreaterOrEqual(t, corr.At(i, j), -1.0)
			assert.LessOrEqual(t, corr.At(i, j), 1.0)
		}
	}
}

func TestCorrelationErrors(t *testing.T) {
	t.Run("zero variance column", func(t *testing.T) {
		m := testMatrix(t, []string{"a", "five"}, [][]float64{
			{1, 5},
			{2, 5},
			{3, 5},
		})
		_, err := Correlation(m)
		require.ErrorIs(t, err, dataset.ErrInvalidInput)
		assert.Contains(t, err.Error(), "five")
	})

	t.Run("single row", func(t *testing.T) {
		m := testMatrix(t, nil, [][]float64{{1, 2}})
		_, err := Correlation(m)
		require.ErrorIs(t, err, dataset.ErrInvalidInput)
	})

	t.Run("single column", func(t *testing.T) {
		m := testMatrix(t, nil, [][]float64{{1}, {2}, {3}})
		_, err := Correlation(m)
		require.ErrorIs(t, err, dataset.ErrInvalidInput)
	})
}

func TestStrongestPairs(t *testing.T) {
	m := testMatrix(t, []string{"a", "b", "c"}, [][]float64{
		{1, 10, 3},
		{2, 20, 1},
		{3, 30, 4},
		{4, 40, 1},
	})

	corr, err := Correlation(m)
	require.NoError(t, err)

	pairs := corr.StrongestPairs(0)
	require.Len(t, pairs, 3)

	// Ranked by |r| descending; (a,b) is perfectly correlated.
	assert.Equal(t, "a", pairs[0].LabelI)
	assert.Equal(t, "b", pairs[0].LabelJ)
	assert.InDelta(t, 1.0, pairs[0].R, 1e-12)
	for i := 1; i < len(pairs); i++ {
		assert.LessOrEqual(t, abs(pairs[i].R), abs(pairs[i-1].R))
	}

	assert.Len(t, corr.StrongestPairs(2), 2)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestCovariance(t *testing.T) {
	m := testMatrix(t, []string{"a", "b"}, [][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
		{4, 8},
	})

	cov, err := Covariance(m)
	require.NoError(t, err)

	// var(a) = 5/3, and b = 2a so cov(a,b) = 2*var(a), var(b) = 4*var(a).
	assert.InDelta(t, 5.0/3.0, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 10.0/3.0, cov.At(0, 1), 1e-12)
	assert.InDelta(t, 20.0/3.0, cov.At(1, 1), 1e-12)
	assert.Equal(t, cov.At(0, 1), cov.At(1, 0))
}

func TestCovarianceTooFewRows(t *testing.T) {
	m := testMatrix(t, nil, [][]float64{{1, 2}})
	_, err := Covariance(m)
	require.ErrorIs(t, err, dataset.ErrInvalidInput)
}
