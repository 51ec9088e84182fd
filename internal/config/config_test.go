package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Institution != "Langara College" {
		t.Errorf("Institution = %q", cfg.Institution)
	}
	if cfg.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.UTCOffsetHours != 8 {
		t.Errorf("UTCOffsetHours = %d, want 8", cfg.UTCOffsetHours)
	}
	if cfg.HTTPTimeoutSeconds != 30 {
		t.Errorf("HTTPTimeoutSeconds = %d, want 30", cfg.HTTPTimeoutSeconds)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "institution: Test College\nutc_offset_hours: 7\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Institution != "Test College" {
		t.Errorf("Institution = %q, want Test College", cfg.Institution)
	}
	if cfg.UTCOffsetHours != 7 {
		t.Errorf("UTCOffsetHours = %d, want 7", cfg.UTCOffsetHours)
	}
	// Untouched fields keep their defaults.
	if cfg.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q, want default", cfg.Timezone)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("institution: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}
