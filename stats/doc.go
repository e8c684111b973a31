// Package stats provides descriptive statistics for labeled numeric matrices.
//
// This package includes column standardization, Pearson correlation and
// sample covariance matrices, and per-column summary statistics. All
// computations use the sample (n-1) denominator.
//
// # Standardization
//
// Rescale every column to zero mean and unit standard deviation:
//
//	std, err := stats.Standardize(m)
//	// std.Matrix is z-scored; std.Means and std.Stds allow inversion
//	orig := std.Restore()
//
// A zero-variance column cannot be standardized and is reported as an error
// wrapping dataset.ErrInvalidInput, naming the degenerate column.
//
// # Correlation
//
// Compute the pairwise Pearson correlation matrix:
//
//	corr, err := stats.Correlation(m)
//	r := corr.At(0, 1)
//
//	// Columns ranked by correlation strength
//	for _, p := range corr.StrongestPairs(5) {
//	    fmt.Printf("%s vs %s: r=%.3f\n", p.LabelI, p.LabelJ, p.R)
//	}
//
// The result is symmetric with an exact unit diagonal, and every entry lies
// in [-1, 1].
//
// # Covariance
//
// Compute the sample covariance matrix:
//
//	cov, err := stats.Covariance(m)
//
// # Column Summaries
//
// Summarize every column at once:
//
//	for _, s := range stats.Summarize(m) {
//	    fmt.Printf("%s: mean=%.2f std=%.2f\n", s.Label, s.Mean, s.Std)
//	}
package stats
