// Package evaluation scores extraction batches against ground truth.
package evaluation

import (
	"strings"

	"github.com/screenmeta/screenmeta/internal/dataset"
	"github.com/screenmeta/screenmeta/internal/extractor"
	"github.com/screenmeta/screenmeta/internal/schema"
)

// metricFields are the scored record fields, in reporting order.
var metricFields = []string{"genres", "themes", "mood", "target_audience", "content_warnings"}

// SchemaComplianceRate returns the percentage of results that succeeded on
// the first attempt.
func SchemaComplianceRate(results []extractor.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	n := 0
	for _, r := range results {
		if r.Success && r.Retries == 0 {
			n++
		}
	}
	return float64(n) / float64(len(results)) * 100
}

// OverallSuccessRate returns the percentage of results that ultimately
// succeeded, with or without retries.
func OverallSuccessRate(results []extractor.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return float64(n) / float64(len(results)) * 100
}

// RetryRate returns the percentage of results that succeeded but needed at
// least one retry.
func RetryRate(results []extractor.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	n := 0
	for _, r := range results {
		if r.Success && r.Retries > 0 {
			n++
		}
	}
	return float64(n) / float64(len(results)) * 100
}

// GenreMatch records one genre comparison against the dataset label.
type GenreMatch struct {
	Title     string   `json:"title"`
	Extracted []string `json:"extracted"`
	Actual    []string `json:"actual"`
	Match     bool     `json:"match"`
}

// GenreAccuracy aggregates genre comparisons against the dataset's
// comma-separated Type label.
type GenreAccuracy struct {
	Accuracy float64      `json:"accuracy"`
	Matches  int          `json:"matches"`
	Total    int          `json:"total"`
	Details  []GenreMatch `json:"details,omitempty"`
}

// ScoreGenres compares extracted genres against the dataset label for every
// successful result whose title appears in the dataset. A result matches
// when the case-folded genre sets intersect. Results without a dataset row
// are excluded from the denominator.
func ScoreGenres(results []extractor.Result, rows []dataset.Row) GenreAccuracy {
	acc := GenreAccuracy{}

	for _, r := range results {
		if !r.Success {
			continue
		}

		row, ok := dataset.Lookup(rows, r.Title)
		if !ok || row.Type == "" {
			continue
		}

		extracted := foldAll(r.Metadata.Genres)
		actual := splitLabel(row.Type)

		match := intersects(toSet(extracted), toSet(actual))
		if match {
			acc.Matches++
		}
		acc.Total++

		acc.Details = append(acc.Details, GenreMatch{
			Title:     r.Title,
			Extracted: extracted,
			Actual:    actual,
			Match:     match,
		})
	}

	if acc.Total > 0 {
		acc.Accuracy = float64(acc.Matches) / float64(acc.Total) * 100
	}
	return acc
}

// ItemComparison records the per-field scores for one annotated title.
type ItemComparison struct {
	Title     string                 `json:"title"`
	Extracted schema.ContentMetadata `json:"extracted"`
	Expected  schema.ContentMetadata `json:"expected"`
	Scores    map[string]float64     `json:"scores"`
}

// ManualAccuracy aggregates comparisons against the curated annotations.
// FieldAverages maps each scored field to the mean of its per-item scores
// (as a percentage); Overall is the unweighted mean of the five field
// averages, so every field contributes equally regardless of how many items
// it aggregated.
type ManualAccuracy struct {
	FieldAverages map[string]float64 `json:"field_averages"`
	Overall       float64            `json:"overall"`
	Details       []ItemComparison   `json:"details,omitempty"`
}

// ScoreManual compares results against the curated annotations. Annotations
// without a matching successful result are skipped. Set-valued fields score
// by Jaccard similarity of case-folded sets; mood and target_audience score
// by exact case-insensitive match.
func ScoreManual(results []extractor.Result, annotations []dataset.Annotation) ManualAccuracy {
	fieldScores := make(map[string][]float64, len(metricFields))

	var details []ItemComparison

	for _, a := range annotations {
		result, ok := findResult(results, a.Title)
		if !ok || !result.Success {
			continue
		}

		extracted := *result.Metadata
		scores := map[string]float64{
			"genres":           Jaccard(extracted.Genres, a.Expected.Genres),
			"themes":           Jaccard(extracted.Themes, a.Expected.Themes),
			"mood":             exactFold(extracted.Mood, a.Expected.Mood),
			"target_audience":  exactFold(extracted.TargetAudience, a.Expected.TargetAudience),
			"content_warnings": Jaccard(extracted.ContentWarnings, a.Expected.ContentWarnings),
		}

		for field, score := range scores {
			fieldScores[field] = append(fieldScores[field], score)
		}

		details = append(details, ItemComparison{
			Title:     a.Title,
			Extracted: extracted,
			Expected:  a.Expected,
			Scores:    scores,
		})
	}

	averages := make(map[string]float64, len(metricFields))
	for _, field := range metricFields {
		averages[field] = fieldAverage(fieldScores[field])
	}

	return ManualAccuracy{
		FieldAverages: averages,
		Overall:       overallScore(averages),
		Details:       details,
	}
}

// Jaccard returns the Jaccard similarity of two case-folded string sets.
// Two empty sets agree vacuously and score 1.0.
func Jaccard(a, b []string) float64 {
	sa, sb := toSet(foldAll(a)), toSet(foldAll(b))
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}

	intersection := 0
	for k := range sa {
		if _, ok := sb[k]; ok {
			intersection++
		}
	}
	union := len(sa) + len(sb) - intersection
	return float64(intersection) / float64(union)
}

// Failure is one failed extraction, kept for the report.
type Failure struct {
	Title string `json:"title"`
	Error string `json:"error"`
}

// Failures partitions out the failed results.
func Failures(results []extractor.Result) []Failure {
	var failures []Failure
	for _, r := range results {
		if !r.Success {
			failures = append(failures, Failure{Title: r.Title, Error: r.Error})
		}
	}
	return failures
}

// fieldAverage is the mean of per-item scores for one field, as a
// percentage. No comparable items yields 0.
func fieldAverage(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)) * 100
}

// overallScore is the unweighted mean of the field averages.
func overallScore(averages map[string]float64) float64 {
	if len(averages) == 0 {
		return 0
	}
	sum := 0.0
	for _, avg := range averages {
		sum += avg
	}
	return sum / float64(len(averages))
}

func findResult(results []extractor.Result, title string) (extractor.Result, bool) {
	for _, r := range results {
		if r.Title == title {
			return r, true
		}
	}
	return extractor.Result{}, false
}

func foldAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}

func splitLabel(label string) []string {
	parts := strings.Split(label, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(strings.TrimSpace(p)))
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

func exactFold(a, b string) float64 {
	if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
		return 1.0
	}
	return 0.0
}
