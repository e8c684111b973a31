// Package main demonstrates exploratory analysis of a wine-style dataset:
// column summaries, a correlation matrix, and principal component analysis.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/sartorproj/gopca/dataset"
	"github.com/sartorproj/gopca/pca"
	"github.com/sartorproj/gopca/stats"
)

// wineFeatures is the column layout of the UCI wine dataset.
var wineFeatures = []string{
	"alcohol", "malic_acid", "ash", "alcalinity_of_ash", "magnesium",
	"total_phenols", "flavanoids", "nonflavanoid_phenols", "proanthocyanins",
	"color_intensity", "hue", "od280_od315", "proline",
}

// SummaryResult holds per-column statistics for JSON export
type SummaryResult struct {
	Label  string  `json:"label"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// ComponentResult holds one principal component for JSON export
type ComponentResult struct {
	Component  string  `json:"component"`
	Eigenvalue float64 `json:"eigenvalue"`
	Ratio      float64 `json:"explained_variance_ratio"`
	Cumulative float64 `json:"cumulative_ratio"`
}

// OutputData holds all results for visualization
type OutputData struct {
	NObs        int               `json:"n_obs"`
	Features    []string          `json:"features"`
	Classes     []string          `json:"classes"`
	Summaries   []SummaryResult   `json:"summaries"`
	Correlation [][]float64       `json:"correlation"`
	Components  []ComponentResult `json:"components"`
	Retained    int               `json:"retained_components"`
	Scores      [][]float64       `json:"scores"`
	Loadings    [][]float64       `json:"loadings"`
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoPCA Demonstration - Exploratory Analysis of the Wine Dataset")
	fmt.Println(strings.Repeat("=", 80))

	m, classes := loadWine()
	fmt.Printf("\nLoaded %d observations, %d features, %d classes\n",
		m.Rows(), m.Cols(), countClasses(classes))

	// Column summaries
	fmt.Printf("\n%s\nCOLUMN SUMMARIES\n%s\n", strings.Repeat("-", 80), strings.Repeat("-", 80))
	summaries := stats.Summarize(m)
	fmt.Printf("   %-22s %10s %10s %10s %10s %10s\n", "feature", "mean", "std", "min", "median", "max")
	for _, s := range summaries {
		fmt.Printf("   %-22s %10.3f %10.3f %10.3f %10.3f %10.3f\n",
			s.Label, s.Mean, s.Std, s.Min, s.Median, s.Max)
	}

	// Correlation structure
	fmt.Printf("\n%s\nSTRONGEST CORRELATIONS\n%s\n", strings.Repeat("-", 80), strings.Repeat("-", 80))
	corr, err := stats.Correlation(m)
	if err != nil {
		fmt.Printf("   Error computing correlations: %v\n", err)
		os.Exit(1)
	}
	for _, p := range corr.StrongestPairs(8) {
		fmt.Printf("   %-22s vs %-22s r=%+.3f\n", p.LabelI, p.LabelJ, p.R)
	}

	// PCA on standardized features (the units differ wildly)
	fmt.Printf("\n%s\nPRINCIPAL COMPONENT ANALYSIS (correlation-based)\n%s\n",
		strings.Repeat("-", 80), strings.Repeat("-", 80))
	result, err := pca.Compute(m, true)
	if err != nil {
		fmt.Printf("   Error computing PCA: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("   %-10s %12s %10s %12s\n", "component", "eigenvalue", "ratio", "cumulative")
	for _, c := range result.Components() {
		fmt.Printf("   %-10s %12.4f %9.1f%% %11.1f%%\n",
			c.Component, c.Eigenvalue, 100*c.Ratio, 100*c.Cumulative)
	}

	retained := result.Retain(pca.DefaultRetentionConfig())
	kaiser := result.Retain(&pca.RetentionConfig{Criterion: pca.CriterionKaiser})
	fmt.Printf("\n   Components for 95%% of variance: %d\n", retained)
	fmt.Printf("   Components by Kaiser rule: %d\n", kaiser)

	// Export results
	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	export(m, classes, summaries, corr, result, retained)

	fmt.Println("\nTo visualize: python visualize.py")
	fmt.Println(strings.Repeat("=", 80))
}

// loadWine reads data/wine.csv when present, otherwise synthesizes a
// dataset with the same shape so the demo runs standalone.
func loadWine() (*dataset.Matrix, []string) {
	for _, p := range []string{"data", "./data", "../data"} {
		path := filepath.Join(p, "wine.csv")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		opts := dataset.DefaultCSVOptions()
		opts.ClassColumn = "class"
		m, classes, err := dataset.LoadCSV(path, opts)
		if err != nil {
			fmt.Printf("   Error loading %s: %v\n", path, err)
			break
		}
		fmt.Printf("\nData file: %s\n", path)
		return m, classes
	}

	fmt.Println("\nNo data/wine.csv found, using a synthetic dataset")
	return syntheticWine()
}

// syntheticWine builds a deterministic 178x13 three-class dataset in the
// wine layout.
func syntheticWine() (*dataset.Matrix, []string) {
	const rows = 178
	p := len(wineFeatures)

	rng := rand.New(rand.NewSource(7))
	data := make([][]float64, rows)
	classes := make([]string, rows)

	for i := range data {
		class := i % 3
		classes[i] = fmt.Sprintf("%d", class+1)
		row := make([]float64, p)
		for j := range row {
			center := 10 + 3*float64(j) + 2.5*float64(class)
			spread := 1 + 0.4*float64(j%5)
			row[j] = center + spread*rng.NormFloat64()
		}
		data[i] = row
	}

	m, err := dataset.NewWithLabels(wineFeatures, data)
	if err != nil {
		fmt.Printf("   Error building synthetic dataset: %v\n", err)
		os.Exit(1)
	}
	return m, classes
}

// countClasses counts distinct class labels.
func countClasses(classes []string) int {
	seen := make(map[string]bool)
	for _, c := range classes {
		seen[c] = true
	}
	return len(seen)
}

// export writes all results to eda_results.json for the plotting script.
func export(m *dataset.Matrix, classes []string, summaries []stats.ColumnSummary,
	corr *stats.CorrMatrix, result *pca.Result, retained int) {

	out := OutputData{
		NObs:        m.Rows(),
		Features:    m.Labels,
		Classes:     classes,
		Correlation: corr.Values,
		Retained:    retained,
		Scores:      result.Scores.Data,
		Loadings:    result.Loadings.Data,
	}
	for _, s := range summaries {
		out.Summaries = append(out.Summaries, SummaryResult(s))
	}
	for _, c := range result.Components() {
		out.Components = append(out.Components, ComponentResult(c))
	}

	if data, err := json.MarshalIndent(out, "", "  "); err == nil {
		os.WriteFile("eda_results.json", data, 0644)
		fmt.Println("Exported analysis to eda_results.json")
	}
}
