package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Project.Dir != "." {
		t.Errorf("expected project dir '.', got %s", cfg.Project.Dir)
	}
	if cfg.Output.Dir != "output/maps" {
		t.Errorf("expected output dir 'output/maps', got %s", cfg.Output.Dir)
	}
	if cfg.Output.Scale != 1 {
		t.Errorf("expected scale 1, got %d", cfg.Output.Scale)
	}
	if cfg.Output.Indexed {
		t.Error("expected indexed to be false by default")
	}
	if cfg.Render.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", cfg.Render.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gbamap.yaml")

	yamlContent := `
project:
  dir: /src/pokeemerald

output:
  dir: /tmp/maps
  scale: 2
  indexed: true

render:
  workers: 4
  filter: Town

logging:
  level: debug
  log_file: render.log
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Project.Dir != "/src/pokeemerald" {
		t.Errorf("expected project dir /src/pokeemerald, got %s", cfg.Project.Dir)
	}
	if cfg.Output.Dir != "/tmp/maps" {
		t.Errorf("expected output dir /tmp/maps, got %s", cfg.Output.Dir)
	}
	if cfg.Output.Scale != 2 {
		t.Errorf("expected scale 2, got %d", cfg.Output.Scale)
	}
	if !cfg.Output.Indexed {
		t.Error("expected indexed to be true")
	}
	if cfg.Render.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Render.Workers)
	}
	if cfg.Render.Filter != "Town" {
		t.Errorf("expected filter 'Town', got %s", cfg.Render.Filter)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gbamap.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  scale: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Scale != 3 {
		t.Errorf("expected scale 3 from file, got %d", cfg.Output.Scale)
	}
	if cfg.Render.Workers != 1 {
		t.Errorf("expected default worker count, got %d", cfg.Render.Workers)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  scale: [nope\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load("/nonexistent/gbamap.yaml"); err == nil {
		t.Error("expected error for missing explicit config path, got nil")
	}
}
