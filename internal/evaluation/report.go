package evaluation

import (
	"github.com/screenmeta/screenmeta/internal/logger"
	"github.com/screenmeta/screenmeta/internal/output"
)

// DefaultReportPath is where evaluate writes its report unless overridden.
const DefaultReportPath = "data/evaluation_report.json"

// Metrics is the aggregate quality section of a report.
type Metrics struct {
	SchemaComplianceFirstTry float64            `json:"schema_compliance_first_try" yaml:"schema_compliance_first_try"`
	OverallSuccessRate       float64            `json:"overall_success_rate" yaml:"overall_success_rate"`
	RetryRate                float64            `json:"retry_rate" yaml:"retry_rate"`
	GenreAccuracy            float64            `json:"genre_accuracy" yaml:"genre_accuracy"`
	ManualAccuracy           map[string]float64 `json:"manual_accuracy" yaml:"manual_accuracy"`
}

// Report is the persisted evaluation document.
type Report struct {
	Timestamp    string    `json:"timestamp" yaml:"timestamp"`
	TotalSamples int       `json:"total_samples" yaml:"total_samples"`
	Metrics      Metrics   `json:"metrics" yaml:"metrics"`
	FailureCount int       `json:"failure_count" yaml:"failure_count"`
	Failures     []Failure `json:"failures" yaml:"failures"`
}

// Save writes the report to a file in the given format.
func (r *Report) Save(path string, format output.Format) error {
	if err := output.WriteFile(path, format, r); err != nil {
		return err
	}
	logger.Info("report saved", "path", path, "format", format)
	return nil
}
