package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a minimal valid configuration.
const validConfigYAML = `
pipeline:
  output:
    path: "results.txt"
  logging:
    level: "debug"
    format: "json"
  report:
    enabled: true
    format: "table"
  history:
    enabled: true
    path: "data/history.db"
features:
  strict: true
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig does not validate: %v", err)
	}

	if cfg.Pipeline.Logging.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Pipeline.Logging.Level)
	}

	if cfg.Pipeline.Logging.Format != "text" {
		t.Errorf("default format = %q, want text", cfg.Pipeline.Logging.Format)
	}

	if cfg.Features.Strict {
		t.Error("default strict = true, want false")
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}

	if cfg.Pipeline.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Pipeline.Logging.Level)
	}

	if !cfg.Pipeline.Report.Enabled {
		t.Error("report.enabled = false, want true")
	}

	if cfg.Pipeline.History.Path != "data/history.db" {
		t.Errorf("history.path = %q, want data/history.db", cfg.Pipeline.History.Path)
	}

	if !cfg.Features.Strict {
		t.Error("strict = false, want true")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadConfig expected error for missing file")
	}
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "invalid log level",
			yaml: `
pipeline:
  logging:
    level: "verbose"
`,
			wantErr: ErrInvalidLogLevel,
		},
		{
			name: "invalid log format",
			yaml: `
pipeline:
  logging:
    format: "xml"
`,
			wantErr: ErrInvalidLogFormat,
		},
		{
			name: "invalid report format",
			yaml: `
pipeline:
  report:
    format: "csv"
`,
			wantErr: ErrInvalidReportMode,
		},
		{
			name: "history without path",
			yaml: `
pipeline:
  history:
    enabled: true
`,
			wantErr: ErrMissingHistoryDB,
		},
	}

	// Neutralize ambient overrides so the file contents decide.
	t.Setenv("LINEPIPE_LOG_LEVEL", "")
	t.Setenv("LINEPIPE_HISTORY_PATH", "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempConfigFile(t, tt.yaml)

			_, err := LoadConfig(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LINEPIPE_LOG_LEVEL", "warn")
	t.Setenv("LINEPIPE_HISTORY_PATH", "/tmp/override.db")

	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}

	if cfg.Pipeline.Logging.Level != "warn" {
		t.Errorf("level = %q, want env override warn", cfg.Pipeline.Logging.Level)
	}

	if cfg.Pipeline.History.Path != "/tmp/override.db" {
		t.Errorf("history.path = %q, want env override", cfg.Pipeline.History.Path)
	}
}
