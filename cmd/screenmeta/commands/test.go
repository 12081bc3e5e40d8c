package commands

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/screenmeta/screenmeta/internal/dataset"
	"github.com/screenmeta/screenmeta/internal/extractor"
)

const testSampleSize = 5

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Smoke-test extraction on the first 5 catalog rows",
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	e, err := newExtractor()
	if err != nil {
		return err
	}

	rows, err := dataset.Load(viper.GetString("dataset"))
	if err != nil {
		return err
	}

	items := make([]extractor.Item, 0, testSampleSize)
	for _, row := range dataset.Head(rows, testSampleSize) {
		items = append(items, extractor.Item{Title: row.Title, Description: row.Description})
	}

	fmt.Printf("Testing extraction on %d descriptions...\n\n", len(items))
	results := e.ExtractBatch(ctx, items)

	successes := 0
	for _, r := range results {
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Title: %s\n", r.Title)
		fmt.Printf("Description: %s\n", truncate(r.Description, 100))
		if r.Success {
			successes++
			m := r.Metadata
			fmt.Printf("Genres: %v\n", m.Genres)
			fmt.Printf("Themes: %v\n", m.Themes)
			fmt.Printf("Mood: %s\n", m.Mood)
			fmt.Printf("Audience: %s\n", m.TargetAudience)
			fmt.Printf("Warnings: %v\n", m.ContentWarnings)
			fmt.Printf("Retries: %d\n", r.Retries)
		} else {
			fmt.Printf("FAILED: %s\n", r.Error)
		}
		fmt.Println()
	}

	fmt.Printf("Results: %d/%d successful\n", successes, len(results))
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
