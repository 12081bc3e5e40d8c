package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/screenmeta/screenmeta/internal/dataset"
	"github.com/screenmeta/screenmeta/internal/evaluation"
	"github.com/screenmeta/screenmeta/internal/output"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the full evaluation pipeline against dataset and annotations",
	Long: `Evaluate extracts metadata for the curated annotation set plus a
deterministic random sample of catalog rows, scores the results against both
ground-truth sources, and writes an evaluation report.`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	flags := evaluateCmd.Flags()
	flags.IntP("samples", "n", 50, "number of catalog rows to sample")
	flags.Int64("seed", 42, "sampling seed")
	flags.String("report", evaluation.DefaultReportPath, "report output path (empty to skip)")
	flags.String("format", "json", "report format: json, yaml")
	flags.Bool("details", false, "also save per-item detail records")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	formatName, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	e, err := newExtractor()
	if err != nil {
		return err
	}

	rows, err := dataset.Load(viper.GetString("dataset"))
	if err != nil {
		return err
	}

	samples, _ := cmd.Flags().GetInt("samples")
	seed, _ := cmd.Flags().GetInt64("seed")
	reportPath, _ := cmd.Flags().GetString("report")
	details, _ := cmd.Flags().GetBool("details")

	_, err = evaluation.Run(ctx, e, rows, dataset.Annotations(), evaluation.RunOptions{
		Samples:      samples,
		Seed:         seed,
		ReportPath:   reportPath,
		ReportFormat: format,
		Details:      details,
	})
	return err
}
