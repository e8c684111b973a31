package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gopca/dataset"
)

func testMatrix(t *testing.T, labels []string, data [][]float64) *dataset.Matrix {
	t.Helper()
	m, err := dataset.NewWithLabels(labels, data)
	require.NoError(t, err)
	return m
}

func TestStandardize(t *testing.T) {
	m := testMatrix(t, []string{"a", "b", "c"}, [][]float64{
		{2, 100, -1.5},
		{4, 250, 0.25},
		{6, 175, 3.75},
		{8, 320, -2.25},
		{10, 90, 1.0},
	})

	std, err := Standardize(m)
	require.NoError(t, err)
	require.Equal(t, m.Rows(), std.Matrix.Rows())
	require.Equal(t, m.Labels, std.Matrix.Labels)

	// Every column must have mean 0 and sample standard deviation 1.
	for j := 0; j < std.Matrix.Cols(); j++ {
		assert.InDelta(t, 0.0, std.Matrix.Mean(j), 1e-9, "column %d mean", j)
		assert.InDelta(t, 1.0, std.Matrix.Std(j), 1e-9, "column %d std", j)
	}
}

func TestStandardizeRestore(t *testing.T) {
	m := testMatrix(t, []string{"a", "b"}, [][]float64{
		{1.5, -20},
		{2.5, 45},
		{9.0, 10},
	})

	std, err := Standardize(m)
	require.NoError(t, err)

	restored := std.Restore()
	require.Equal(t, m.Labels, restored.Labels)
	for i := range m.Data {
		for j := range m.Data[i] {
			assert.InDelta(t, m.Data[i][j], restored.Data[i][j], 1e-9)
		}
	}
}

func TestStandardizeZeroVarianceColumn(t *testing.T) {
	m := testMatrix(t, []string{"a", "constant"}, [][]float64{
		{1, 5},
		{2, 5},
		{3, 5},
	})

	_, err := Standardize(m)
	require.ErrorIs(t, err, dataset.ErrInvalidInput)
	assert.Contains(t, err.Error(), "constant", "error must name the degenerate column")
}

func TestStandardizeTooFewRows(t *testing.T) {
	m := testMatrix(t, nil, [][]float64{{1, 2}})

	_, err := Standardize(m)
	require.ErrorIs(t, err, dataset.ErrInvalidInput)
}

func TestStandardizeDoesNotMutateInput(t *testing.T) {
	m := testMatrix(t, nil, [][]float64{{1, 2}, {3, 4}, {5, 7}})
	before := m.Clone()

	_, err := Standardize(m)
	require.NoError(t, err)
	assert.Equal(t, before.Data, m.Data)
}

func TestSummarize(t *testing.T) {
	m := testMatrix(t, []string{"a", "b"}, [][]float64{
		{1, 10},
		{3, 20},
		{5, 60},
	})

	summaries := Summarize(m)
	require.Len(t, summaries, 2)

	assert.Equal(t, "a", summaries[0].Label)
	assert.InDelta(t, 3.0, summaries[0].Mean, 1e-12)
	assert.InDelta(t, 2.0, summaries[0].Std, 1e-12)
	assert.InDelta(t, 1.0, summaries[0].Min, 1e-12)
	assert.InDelta(t, 5.0, summaries[0].Max, 1e-12)
	assert.InDelta(t, 3.0, summaries[0].Median, 1e-12)

	assert.Equal(t, "b", summaries[1].Label)
	assert.InDelta(t, 30.0, summaries[1].Mean, 1e-12)
	assert.InDelta(t, 20.0, summaries[1].Median, 1e-12)
	assert.False(t, math.IsNaN(summaries[1].Std))
}
