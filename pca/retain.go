package pca

// Retention criteria.
const (
	// CriterionCumulative keeps the smallest number of leading components
	// whose cumulative explained variance reaches the threshold.
	CriterionCumulative = "cumulative"
	// CriterionKaiser keeps components whose eigenvalue exceeds the mean
	// eigenvalue (the classic eigenvalue-greater-than-one rule for
	// correlation-based PCA).
	CriterionKaiser = "kaiser"
)

// RetentionConfig controls how many components Retain keeps.
type RetentionConfig struct {
	Criterion string  // CriterionCumulative or CriterionKaiser
	Threshold float64 // cumulative-variance target, e.g. 0.95
}

// DefaultRetentionConfig returns the cumulative-variance rule at 0.95.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Criterion: CriterionCumulative,
		Threshold: 0.95,
	}
}

// Retain returns the number of leading components selected by cfg.
// At least one component is always retained. An unknown criterion falls
// back to the default configuration.
func (r *Result) Retain(cfg *RetentionConfig) int {
	if cfg == nil {
		cfg = DefaultRetentionConfig()
	}

	switch cfg.Criterion {
	case CriterionKaiser:
		mean := 0.0
		for _, ev := range r.Eigenvalues {
			mean += ev
		}
		mean /= float64(len(r.Eigenvalues))

		k := 0
		for _, ev := range r.Eigenvalues {
			if ev > mean {
				k++
			}
		}
		if k == 0 {
			k = 1
		}
		return k

	case CriterionCumulative:
		for j, cum := range r.CumulativeVariance() {
			if cum >= cfg.Threshold {
				return j + 1
			}
		}
		return len(r.ExplainedVariance)

	default:
		return r.Retain(DefaultRetentionConfig())
	}
}

// ComponentSummary pairs a component with its variance contribution, ready
// for a scree-style report.
type ComponentSummary struct {
	Component  string
	Eigenvalue float64
	Ratio      float64
	Cumulative float64
}

// Components returns one summary per component in descending eigenvalue
// order.
func (r *Result) Components() []ComponentSummary {
	cum := r.CumulativeVariance()
	summaries := make([]ComponentSummary, len(r.Eigenvalues))
	for j := range summaries {
		summaries[j] = ComponentSummary{
			Component:  r.Scores.Labels[j],
			Eigenvalue: r.Eigenvalues[j],
			Ratio:      r.ExplainedVariance[j],
			Cumulative: cum[j],
		}
	}
	return summaries
}
