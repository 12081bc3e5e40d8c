package evaluation

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/screenmeta/screenmeta/internal/dataset"
	"github.com/screenmeta/screenmeta/internal/extractor"
	"github.com/screenmeta/screenmeta/internal/output"
)

// RunOptions configures a full evaluation run.
type RunOptions struct {
	Samples      int           // random catalog rows to extract (default 50)
	Seed         int64         // sampling seed (default 42)
	ReportPath   string        // empty disables report persistence
	ReportFormat output.Format // defaults to JSON
	Details      bool          // include per-item detail records in the report output
	Out          io.Writer     // human-readable summary destination (default stdout)
}

// Run executes the full evaluation pipeline: extract the annotated items,
// then a deterministic catalog sample, score both against ground truth,
// print a summary, and optionally persist the report.
func Run(ctx context.Context, e *extractor.Extractor, rows []dataset.Row, annotations []dataset.Annotation, opts RunOptions) (*Report, error) {
	if opts.Samples <= 0 {
		opts.Samples = 50
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	if opts.ReportFormat == "" {
		opts.ReportFormat = output.FormatJSON
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, "Evaluating on annotated examples...")
	annotatedItems := make([]extractor.Item, 0, len(annotations))
	for _, a := range annotations {
		annotatedItems = append(annotatedItems, extractor.Item{Title: a.Title, Description: a.Description})
	}
	annotatedResults := e.ExtractBatch(ctx, annotatedItems)

	sample := dataset.Sample(rows, opts.Samples, opts.Seed)
	fmt.Fprintf(out, "Evaluating on %d sampled descriptions...\n", len(sample))
	sampleItems := make([]extractor.Item, 0, len(sample))
	for _, row := range sample {
		sampleItems = append(sampleItems, extractor.Item{Title: row.Title, Description: row.Description})
	}
	sampleResults := e.ExtractBatch(ctx, sampleItems)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation interrupted: %w", err)
	}

	allResults := append(append([]extractor.Result{}, annotatedResults...), sampleResults...)

	genreAcc := ScoreGenres(sampleResults, rows)
	manualAcc := ScoreManual(annotatedResults, annotations)
	failures := Failures(allResults)

	metricRows := [][2]string{
		{"Schema compliance (1st try)", fmt.Sprintf("%.1f%%", SchemaComplianceRate(allResults))},
		{"Overall success rate", fmt.Sprintf("%.1f%%", OverallSuccessRate(allResults))},
		{"Retry rate", fmt.Sprintf("%.1f%%", RetryRate(allResults))},
		{"Genre match (vs dataset)", fmt.Sprintf("%.1f%% (%d/%d)", genreAcc.Accuracy, genreAcc.Matches, genreAcc.Total)},
	}
	for _, field := range metricFields {
		metricRows = append(metricRows, [2]string{
			"Manual accuracy: " + field,
			fmt.Sprintf("%.1f%%", manualAcc.FieldAverages[field]),
		})
	}
	metricRows = append(metricRows, [2]string{"Manual accuracy: overall", fmt.Sprintf("%.1f%%", manualAcc.Overall)})

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderMetricsTable(metricRows))

	if len(failures) > 0 {
		fmt.Fprintf(out, "\nFailures (%d):\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(out, "  %s: %s\n", f.Title, f.Error)
		}
	}

	report := &Report{
		Timestamp:    time.Now().Format(time.RFC3339),
		TotalSamples: len(allResults),
		Metrics: Metrics{
			SchemaComplianceFirstTry: SchemaComplianceRate(allResults),
			OverallSuccessRate:       OverallSuccessRate(allResults),
			RetryRate:                RetryRate(allResults),
			GenreAccuracy:            genreAcc.Accuracy,
			ManualAccuracy:           manualAccuracyMap(manualAcc),
		},
		FailureCount: len(failures),
		Failures:     failures,
	}

	if opts.ReportPath != "" {
		if err := report.Save(opts.ReportPath, opts.ReportFormat); err != nil {
			return report, err
		}
		fmt.Fprintf(out, "\nReport saved to %s\n", opts.ReportPath)

		if opts.Details {
			detailPath := opts.ReportPath + ".details.jsonl"
			if err := saveDetails(detailPath, genreAcc, manualAcc); err != nil {
				return report, err
			}
			fmt.Fprintf(out, "Per-item details saved to %s\n", detailPath)
		}
	}

	return report, nil
}

// manualAccuracyMap flattens the manual accuracy block for the report.
func manualAccuracyMap(acc ManualAccuracy) map[string]float64 {
	m := make(map[string]float64, len(acc.FieldAverages)+1)
	for field, avg := range acc.FieldAverages {
		m[field] = avg
	}
	m["overall"] = acc.Overall
	return m
}

// saveDetails writes the per-item audit records as JSONL.
func saveDetails(path string, genreAcc GenreAccuracy, manualAcc ManualAccuracy) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create details file: %w", err)
	}
	defer f.Close()

	w := output.NewJSONLWriter(f)
	for _, d := range genreAcc.Details {
		if err := w.Write(d); err != nil {
			return err
		}
	}
	for _, d := range manualAcc.Details {
		if err := w.Write(d); err != nil {
			return err
		}
	}
	return w.Flush()
}
