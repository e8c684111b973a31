// Package dataset provides labeled numeric matrices and utilities.
//
// This package includes the Matrix type for representing rectangular numeric
// data with named columns, along with functions for data loading, validation,
// and per-column statistics.
//
// # Creating a Matrix
//
// Create a matrix from rows:
//
//	rows := [][]float64{{1.2, 3.4}, {5.6, 7.8}}
//	m, err := dataset.New(rows)                               // labels x1, x2
//	m, err := dataset.NewWithLabels([]string{"a", "b"}, rows) // explicit labels
//
// Construction validates the input before any numeric work: the data must be
// rectangular, non-empty, and every entry finite. Violations are reported as
// errors wrapping ErrInvalidInput.
//
// # Loading from CSV
//
// Load a matrix from a CSV file with a header row:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.ClassColumn = "class"
//	m, classes, err := dataset.LoadCSV("wine.csv", opts)
//
// The header supplies column labels; the optional class column is split out
// as per-row class labels rather than parsed as a feature.
//
// # Column Statistics
//
// Calculate summary statistics for a column:
//
//	mean := m.Mean(0)
//	std := m.Std(0)    // sample standard deviation (n-1)
//	med := m.Median(0)
//
// # Access
//
// Work with rows and columns:
//
//	row := m.Row(3)                        // copy of one observation
//	col := m.Column(0)                     // copy of one feature
//	col, err := m.ColumnByLabel("alcohol") // lookup by label
//	dup := m.Clone()
package dataset
