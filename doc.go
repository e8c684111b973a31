// Package gopca provides multivariate descriptive statistics and principal
// component analysis for tabular numeric data.
//
// GoPCA is a small Go package for exploratory data analysis of datasets with
// a moderate number of numeric features: column standardization, Pearson
// correlation matrices, and principal component analysis via symmetric
// eigendecomposition of the sample covariance matrix.
//
// # Features
//
//   - Labeled numeric matrices with strict input validation
//   - Per-column descriptive statistics (mean, std, min, max, median)
//   - Column standardization (z-scoring) with exact inversion
//   - Pearson correlation and sample covariance matrices
//   - Covariance- and correlation-based PCA (loadings, scores,
//     explained-variance ratios)
//   - Component retention rules (cumulative variance, Kaiser)
//   - CSV loading with column labels and an optional class column
//
// # Quick Start
//
// Run a correlation-based PCA:
//
//	m, _ := dataset.NewWithLabels(labels, rows)
//	result, _ := pca.Compute(m, true)
//	for j, ratio := range result.ExplainedVariance {
//	    fmt.Printf("PC%d explains %.1f%%\n", j+1, 100*ratio)
//	}
//
// Compute a correlation matrix:
//
//	corr, _ := stats.Correlation(m)
//	for _, p := range corr.StrongestPairs(5) {
//	    fmt.Printf("%s vs %s: r=%.3f\n", p.LabelI, p.LabelJ, p.R)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dataset: Labeled numeric matrices, validation, column statistics, CSV
//   - stats: Standardization, correlation, covariance, column summaries
//   - pca: Principal component analysis and component retention
//
// # References
//
//   - Jolliffe, I.T. (2002). Principal Component Analysis
//   - Aeberhard, S., & Forina, M. (1991). Wine dataset, UCI Machine Learning Repository
package gopca
