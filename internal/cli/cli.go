package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/Shexter/langara-ics/internal/calendar"
	"github.com/Shexter/langara-ics/internal/config"
	"github.com/Shexter/langara-ics/internal/export"
	"github.com/Shexter/langara-ics/internal/logger"
	"github.com/Shexter/langara-ics/internal/page"
	"github.com/Shexter/langara-ics/internal/schedule"
)

var (
	flagInput   string
	flagURL     string
	flagOutDir  string
	flagOutFile string
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langara-ics",
		Short: "Convert a Langara registered-courses page to an iCalendar file",
		Long: `Converts the HTML of a Langara registration page into an RFC 5545
.ics calendar file. Reads a saved page (or fetches one by URL), finds the
registered courses table, parses every course session, and writes recurring
calendar events for lectures, labs, and final exams.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Path to a saved registration page, or '-' for stdin")
	cmd.Flags().StringVar(&flagURL, "url", "", "Fetch the registration page from a URL instead of a file")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory to write the .ics file into")
	cmd.Flags().StringVar(&flagOutFile, "out-file", "", "Calendar filename (default: langara-schedule-<date>.ics)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagInput == "" && flagURL == "" {
		return fmt.Errorf("either --input or --url is required")
	}
	if flagInput != "" && flagURL != "" {
		return fmt.Errorf("--input and --url are mutually exclusive")
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	table, err := schedule.FindScheduleTable(doc)
	if err != nil {
		if errors.Is(err, schedule.ErrTableNotFound) {
			return fmt.Errorf("%w\nMake sure you saved the page showing the registered courses table (try the by-course view tab)", err)
		}
		return err
	}

	sessions, stats, err := schedule.CollectSessions(table)
	if err != nil {
		var noSessions *schedule.NoSessionsError
		if errors.As(err, &noSessions) {
			return fmt.Errorf("%w\nThe table was found but contained no parseable sessions; switch view tabs and save the page again", err)
		}
		return err
	}

	logger.Debug("Collected sessions", logger.Fields{
		"sessions": stats.Sessions,
		"header":   stats.HeaderRows,
		"skipped":  stats.SkippedRows,
		"invalid":  stats.InvalidRows,
	})

	document := calendar.Generate(sessions, calendar.Options{
		Institution:    cfg.Institution,
		TimezoneID:     cfg.Timezone,
		ProdID:         cfg.ProdID,
		UTCOffsetHours: cfg.UTCOffsetHours,
	})

	writer, err := export.New(flagOutDir)
	if err != nil {
		return err
	}
	path, err := writer.WriteCalendar(flagOutFile, document)
	if err != nil {
		return err
	}

	result := &OutputResult{
		ExportedAt: time.Now().UTC(),
		Path:       path,
		Stats:      stats,
	}
	return WriteOutput(cmd.OutOrStdout(), result, format)
}

// loadDocument reads the registration page from the configured source.
func loadDocument(cfg *config.Config) (*goquery.Document, error) {
	switch {
	case flagURL != "":
		loader := page.NewLoader(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)
		return loader.FromURL(flagURL)
	case flagInput == "-":
		return page.FromReader(os.Stdin)
	default:
		return page.FromFile(flagInput)
	}
}
