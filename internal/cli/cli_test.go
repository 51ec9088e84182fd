package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunExport_EndToEnd(t *testing.T) {
	outDir := t.TempDir()

	output, err := runCommand(t,
		"--input", "../../testdata/fixtures/registered_courses.html",
		"--out-dir", outDir,
		"--out-file", "schedule.ics",
		"--format", "json",
	)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var result OutputResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}

	if result.Stats.Sessions != 4 {
		t.Errorf("Sessions = %d, want 4", result.Stats.Sessions)
	}
	if result.Stats.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", result.Stats.SkippedRows)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "schedule.ics"))
	if err != nil {
		t.Fatalf("calendar file not written: %v", err)
	}

	ics := string(data)
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 4 {
		t.Errorf("expected 4 events in calendar, got %d", got)
	}
	if !strings.Contains(ics, "RRULE:FREQ=WEEKLY;BYDAY=TU,TH;UNTIL=20240810T075900Z") {
		t.Error("missing expected lecture recurrence rule")
	}
	if !strings.Contains(ics, "SUMMARY:FINAL EXAM - ENGL 1123 002") {
		t.Error("missing exam event inherited from the ENGL rows")
	}
}

func TestRunExport_TextOutput(t *testing.T) {
	outDir := t.TempDir()

	output, err := runCommand(t,
		"--input", "../../testdata/fixtures/registered_courses.html",
		"--out-dir", outDir,
		"--format", "text",
	)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if !strings.Contains(output, "Sessions exported: 4") {
		t.Errorf("unexpected text output:\n%s", output)
	}
}

func TestRunExport_TableNotFound(t *testing.T) {
	_, err := runCommand(t,
		"--input", "../../testdata/fixtures/no_schedule.html",
		"--out-dir", t.TempDir(),
	)
	if err == nil {
		t.Fatal("expected an error for a page without the schedule table")
	}
	if !strings.Contains(err.Error(), "table not found") {
		t.Errorf("error = %v, want table-not-found guidance", err)
	}
}

func TestRunExport_FlagValidation(t *testing.T) {
	if _, err := runCommand(t, "--format", "text"); err == nil {
		t.Error("expected error when neither --input nor --url is given")
	}

	if _, err := runCommand(t,
		"--input", "a.html",
		"--url", "http://example.com",
	); err == nil {
		t.Error("expected error when --input and --url are combined")
	}

	if _, err := runCommand(t,
		"--input", "../../testdata/fixtures/registered_courses.html",
		"--format", "xml",
	); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunExport_ConfigOverride(t *testing.T) {
	outDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("institution: Test College\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t,
		"--input", "../../testdata/fixtures/registered_courses.html",
		"--out-dir", outDir,
		"--out-file", "schedule.ics",
		"--config", configPath,
	)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "schedule.ics"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "LOCATION:Test College") {
		t.Error("config institution override not reflected in LOCATION")
	}
}
