package stats

import "github.com/sartorproj/gopca/dataset"

// ColumnSummary describes one column of a dataset.
type ColumnSummary struct {
	Label  string
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes descriptive statistics for every column of m.
func Summarize(m *dataset.Matrix) []ColumnSummary {
	summaries := make([]ColumnSummary, m.Cols())
	for j := range summaries {
		summaries[j] = ColumnSummary{
			Label:  m.Labels[j],
			Mean:   m.Mean(j),
			Std:    m.Std(j),
			Min:    m.Min(j),
			Max:    m.Max(j),
			Median: m.Median(j),
		}
	}
	return summaries
}
