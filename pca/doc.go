// Package pca implements principal component analysis over labeled matrices.
//
// The analysis standardizes (or only centers) the input columns, computes the
// sample covariance matrix, and extracts eigenvalue/eigenvector pairs with a
// symmetric eigendecomposition. Loadings, scores, and explained-variance
// ratios are returned together as an immutable Result.
//
// # Running an Analysis
//
// Correlation-based PCA (columns standardized first):
//
//	result, err := pca.Compute(m, true)
//
// Covariance-based PCA (columns only centered):
//
//	result, err := pca.Compute(m, false)
//
// Inspect the variance structure:
//
//	for _, c := range result.Components() {
//	    fmt.Printf("%s: eigenvalue=%.3f ratio=%.3f cumulative=%.3f\n",
//	        c.Component, c.Eigenvalue, c.Ratio, c.Cumulative)
//	}
//
// # Choosing the Number of Components
//
// Select components with a retention rule:
//
//	k := result.Retain(pca.DefaultRetentionConfig()) // cumulative >= 0.95
//
//	cfg := &pca.RetentionConfig{Criterion: pca.CriterionKaiser}
//	k = result.Retain(cfg)
//
// # Projection and Reconstruction
//
// Project new observations with the fitted centering and scaling:
//
//	scores, err := result.Transform(newData)
//
// Map scores back to feature space:
//
//	recovered, err := result.Reconstruct()
//
// # Determinism
//
// Eigenvectors are unique only up to sign. Compute fixes each loading
// column's sign so its largest-magnitude entry is positive, which makes
// results comparable across linear-algebra backends. Components with equal
// eigenvalues keep the order the decomposition routine returned them in.
package pca
