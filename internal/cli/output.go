package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Shexter/langara-ics/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	ExportedAt time.Time           `json:"exported_at"`
	Path       string              `json:"path"`
	Stats      schedule.ParseStats `json:"stats"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintf(w, "Wrote %s\n", result.Path)
	fmt.Fprintf(w, "Sessions exported: %d\n", result.Stats.Sessions)
	fmt.Fprintf(w, "Table rows: %d (%d header, %d skipped, %d invalid)\n",
		result.Stats.TotalRows, result.Stats.HeaderRows,
		result.Stats.SkippedRows, result.Stats.InvalidRows)
	return nil
}
