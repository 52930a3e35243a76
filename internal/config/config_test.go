//nolint:testpackage // Tests require internal access for thorough testing
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), ".taskmd.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.File != "TODO.md" {
		t.Errorf("File = %q, want TODO.md", cfg.File)
	}
	if cfg.DefaultState != "done" {
		t.Errorf("DefaultState = %q, want done", cfg.DefaultState)
	}
	if cfg.ReportMaxErrors != 5 {
		t.Errorf("ReportMaxErrors = %d, want 5", cfg.ReportMaxErrors)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".taskmd.yaml")
	content := "file: IMPLEMENTATION_PLAN.md\ndefault_state: progress\nreport_max_errors: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.File != "IMPLEMENTATION_PLAN.md" {
		t.Errorf("File = %q, want IMPLEMENTATION_PLAN.md", cfg.File)
	}
	if cfg.DefaultState != "progress" {
		t.Errorf("DefaultState = %q, want progress", cfg.DefaultState)
	}
	if cfg.ReportMaxErrors != 2 {
		t.Errorf("ReportMaxErrors = %d, want 2", cfg.ReportMaxErrors)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".taskmd.yaml")
	if err := os.WriteFile(path, []byte("file: from-file.md\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TASKMD_FILE", "from-env.md")

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.File != "from-env.md" {
		t.Errorf("File = %q, want from-env.md (env wins over file)", cfg.File)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".taskmd.yaml")
	if err := os.WriteFile(path, []byte("file: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := load(path); err == nil {
		t.Error("malformed config should fail to load")
	}
}
