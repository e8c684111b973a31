package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		data   [][]float64
	}{
		{
			name: "no rows",
			data: [][]float64{},
		},
		{
			name: "no columns",
			data: [][]float64{{}},
		},
		{
			name: "ragged rows",
			data: [][]float64{{1, 2}, {3, 4, 5}},
		},
		{
			name: "NaN entry",
			data: [][]float64{{1, 2}, {math.NaN(), 4}},
		},
		{
			name: "Inf entry",
			data: [][]float64{{1, 2}, {3, math.Inf(1)}},
		},
		{
			name:   "label count mismatch",
			labels: []string{"a"},
			data:   [][]float64{{1, 2}, {3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithLabels(tt.labels, tt.data)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNewGeneratesLabels(t *testing.T) {
	m, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "x3"}, m.Labels)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

func TestNewCopiesData(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := New(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, m.Data[0][0], "matrix must own its data")
}

func TestColumnStats(t *testing.T) {
	m, err := NewWithLabels([]string{"a", "b"}, [][]float64{
		{2, 10},
		{4, 30},
		{6, 20},
		{8, 40},
	})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, m.Mean(0), 1e-12)
	assert.InDelta(t, 20.0/3.0, m.Variance(0), 1e-12)
	assert.InDelta(t, math.Sqrt(20.0/3.0), m.Std(0), 1e-12)
	assert.InDelta(t, 2.0, m.Min(0), 1e-12)
	assert.InDelta(t, 8.0, m.Max(0), 1e-12)
	assert.InDelta(t, 5.0, m.Median(0), 1e-12)
	assert.InDelta(t, 25.0, m.Median(1), 1e-12)
}

func TestMedianOddRows(t *testing.T) {
	m, err := New([][]float64{{3}, {1}, {2}})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m.Median(0), 1e-12)
}

func TestColumnAccess(t *testing.T) {
	m, err := NewWithLabels([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	col := m.Column(1)
	assert.Equal(t, []float64{2, 4}, col)

	col[0] = 99
	assert.Equal(t, 2.0, m.Data[0][1], "Column must return a copy")

	byLabel, err := m.ColumnByLabel("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, byLabel)

	_, err = m.ColumnByLabel("missing")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCloneIndependence(t *testing.T) {
	m, err := New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	clone := m.Clone()
	clone.Data[0][0] = 99
	clone.Labels[0] = "changed"

	assert.Equal(t, 1.0, m.Data[0][0])
	assert.Equal(t, "x1", m.Labels[0])
}
