package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteCalendar(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := w.WriteCalendar("schedule.ics", "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	if err != nil {
		t.Fatalf("WriteCalendar failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, not under %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriteCalendar_DefaultName(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	path, err := w.WriteCalendar("", "content")
	if err != nil {
		t.Fatalf("WriteCalendar failed: %v", err)
	}

	name := filepath.Base(path)
	if filepath.Ext(name) != ".ics" {
		t.Errorf("default filename %q should end in .ics", name)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := New(dir); err != nil {
		t.Fatalf("New failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("expected directory at %q", dir)
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2024, time.May, 6, 10, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "langara-schedule-20240506.ics" {
		t.Errorf("DefaultFilename() = %q", got)
	}
}
