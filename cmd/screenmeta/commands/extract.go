package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/screenmeta/screenmeta/internal/extractor"
	"github.com/screenmeta/screenmeta/internal/output"
)

// maxInputLine caps a single pasted description. Catalog descriptions are a
// few hundred bytes; 1MB leaves ample headroom.
const maxInputLine = 1024 * 1024

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract metadata for descriptions read from stdin",
	Long: `Extract reads one description per line from standard input and prints
the extracted metadata. Enter "quit", "exit" or "q" to stop.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("format", "", "emit results as json, jsonl or yaml instead of the field listing")
}

func runExtract(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var writer output.Writer
	if formatName, _ := cmd.Flags().GetString("format"); formatName != "" {
		format, err := output.ParseFormat(formatName)
		if err != nil {
			return err
		}
		writer, err = output.NewWriter(os.Stdout, format)
		if err != nil {
			return err
		}
	}

	e, err := newExtractor()
	if err != nil {
		return err
	}

	return extractLoop(ctx, e, os.Stdin, os.Stdout, writer)
}

// extractLoop reads descriptions line by line until EOF or a quit keyword.
func extractLoop(ctx context.Context, e *extractor.Extractor, in io.Reader, out io.Writer, writer output.Writer) error {
	fmt.Fprintln(out, "Enter a movie/show description (or 'quit' to exit):")
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			break
		}

		description := strings.TrimSpace(scanner.Text())
		if description == "" {
			continue
		}
		switch strings.ToLower(description) {
		case "quit", "exit", "q":
			if writer != nil {
				return writer.Flush()
			}
			return nil
		}

		result := e.Extract(ctx, description)

		if writer != nil {
			if err := writer.Write(result); err != nil {
				return err
			}
			continue
		}

		if result.Success {
			m := result.Metadata
			fmt.Fprintf(out, "\nGenres: %v\n", m.Genres)
			fmt.Fprintf(out, "Themes: %v\n", m.Themes)
			fmt.Fprintf(out, "Mood: %s\n", m.Mood)
			fmt.Fprintf(out, "Audience: %s\n", m.TargetAudience)
			fmt.Fprintf(out, "Warnings: %v\n", m.ContentWarnings)
		} else {
			fmt.Fprintf(out, "Error: %s\n", result.Error)
		}
	}

	if writer != nil {
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("input line exceeds %d bytes: %w", maxInputLine, err)
		}
		return err
	}
	return nil
}
