// Package dataset loads the labeled catalog CSV and holds the curated
// ground-truth annotations used for evaluation.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/screenmeta/screenmeta/internal/logger"
)

// Row is one labeled catalog entry. Type carries a comma-separated genre
// label used for genre-accuracy scoring.
type Row struct {
	Title       string
	Description string
	Type        string
}

// Load reads the catalog CSV from a file.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	logger.Info("dataset loaded", "path", path, "rows", len(rows))
	return rows, nil
}

// Read parses catalog rows from CSV. The header must contain Title,
// Description and Type columns; other columns are ignored.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	titleIdx, descIdx, typeIdx := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			titleIdx = i
		case "description":
			descIdx = i
		case "type":
			typeIdx = i
		}
	}
	if titleIdx < 0 || descIdx < 0 || typeIdx < 0 {
		return nil, fmt.Errorf("header missing required columns (need Title, Description, Type): %v", header)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := Row{}
		if titleIdx < len(record) {
			row.Title = strings.TrimSpace(record[titleIdx])
		}
		if descIdx < len(record) {
			row.Description = strings.TrimSpace(record[descIdx])
		}
		if typeIdx < len(record) {
			row.Type = strings.TrimSpace(record[typeIdx])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Head returns the first n rows that have both a title and a description.
func Head(rows []Row, n int) []Row {
	out := make([]Row, 0, n)
	for _, row := range rows {
		if row.Title == "" || row.Description == "" {
			continue
		}
		out = append(out, row)
		if len(out) == n {
			break
		}
	}
	return out
}

// Sample returns a deterministic random sample of n complete rows (title,
// description and type all present). The same seed always yields the same
// sample, keeping evaluation runs comparable.
func Sample(rows []Row, n int, seed int64) []Row {
	complete := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Title == "" || row.Description == "" || row.Type == "" {
			continue
		}
		complete = append(complete, row)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(complete), func(i, j int) {
		complete[i], complete[j] = complete[j], complete[i]
	})

	if n > len(complete) {
		n = len(complete)
	}
	return complete[:n]
}

// Lookup finds the first row matching a title.
func Lookup(rows []Row, title string) (Row, bool) {
	for _, row := range rows {
		if row.Title == title {
			return row, true
		}
	}
	return Row{}, false
}
