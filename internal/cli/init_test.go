package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/folio/internal/config"
)

func TestPrepareStorage(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, "data", "folio.db")

	result := prepareStorage(context.Background(), cfg)
	if result.status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", result.status, result.message)
	}
	if _, err := os.Stat(cfg.Storage.Path); err != nil {
		t.Errorf("database was not created at %s: %v", cfg.Storage.Path, err)
	}

	cfg.Storage.Backend = config.BackendMemory
	result = prepareStorage(context.Background(), cfg)
	if result.status != "skipped" {
		t.Errorf("expected status 'skipped' for memory backend, got %q", result.status)
	}
}

func TestCreateConfigFile(t *testing.T) {
	// Create a temp directory for testing
	tempDir := t.TempDir()

	// Override the config dir function
	originalFunc := configDirFunc
	configDirFunc = func() string {
		return tempDir
	}
	defer func() {
		configDirFunc = originalFunc
	}()

	// Force mode for non-interactive
	originalForce := initForce
	initForce = true
	defer func() {
		initForce = originalForce
	}()

	result := createConfigFile()

	if result.status != "done" {
		t.Errorf("expected status 'done', got %q: %s", result.status, result.message)
	}

	// Check file was created
	configPath := filepath.Join(tempDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("config file was not created at %s", configPath)
	}

	// Check content
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	if !strings.Contains(string(content), "folio Configuration File") {
		t.Error("config file doesn't contain expected header")
	}
	if !strings.Contains(string(content), "backend: sqlite") {
		t.Error("config file doesn't contain expected default")
	}
}

func TestCreateConfigFile_ExistingNoForce(t *testing.T) {
	// Create a temp directory with existing config
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}

	// Override the config dir function
	originalFunc := configDirFunc
	configDirFunc = func() string {
		return tempDir
	}
	defer func() {
		configDirFunc = originalFunc
	}()

	// No force, should skip
	originalForce := initForce
	initForce = false
	defer func() {
		initForce = originalForce
	}()

	result := createConfigFile()

	if result.status != "skipped" {
		t.Errorf("expected status 'skipped', got %q: %s", result.status, result.message)
	}

	// Verify original file unchanged
	content, _ := os.ReadFile(configPath)
	if string(content) != "existing" {
		t.Error("existing config was modified")
	}
}

func TestGetConfigDir(t *testing.T) {
	// Test with XDG_CONFIG_HOME set
	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	dir := defaultConfigDir()
	if dir != "/custom/config/folio" {
		t.Errorf("expected /custom/config/folio, got %s", dir)
	}

	// Test without XDG_CONFIG_HOME
	os.Unsetenv("XDG_CONFIG_HOME")
	dir = defaultConfigDir()
	homeDir, _ := os.UserHomeDir()
	expected := filepath.Join(homeDir, ".config", "folio")
	if dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}

func TestConfigTemplate(t *testing.T) {
	var parsed map[string]any
	if err := yaml.Unmarshal([]byte(configTemplate), &parsed); err != nil {
		t.Fatalf("config template is not valid YAML: %v", err)
	}

	if !strings.HasPrefix(configTemplate, "# folio Configuration File") {
		t.Error("config template doesn't have expected header")
	}

	// Check essential sections exist
	sections := []string{
		"storage:",
		"appearance:",
		"splash:",
		"content:",
		"logging:",
		"ssh:",
	}

	for _, section := range sections {
		if !strings.Contains(configTemplate, section) {
			t.Errorf("config template missing section: %s", section)
		}
	}
}

func TestInitResult_Structure(t *testing.T) {
	results := []initResult{
		{name: "Step 1", status: "done", message: "OK"},
		{name: "Step 2", status: "skipped", message: "Already exists"},
		{name: "Step 3", status: "failed", message: "Something went wrong"},
	}

	// Verify the structure is correct
	for i, r := range results {
		if r.name == "" {
			t.Errorf("result %d has empty name", i)
		}
		if r.status == "" {
			t.Errorf("result %d has empty status", i)
		}
	}

	// Verify valid statuses
	validStatuses := map[string]bool{"done": true, "skipped": true, "failed": true}
	for i, r := range results {
		if !validStatuses[r.status] {
			t.Errorf("result %d has invalid status: %s", i, r.status)
		}
	}
}

func TestConfigTemplateLoads(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != config.BackendSQLite || cfg.Appearance.Mode != config.ModeSystem {
		t.Errorf("unexpected config from template: %+v", cfg)
	}
	if cfg.SSH.RateLimit != 30 || cfg.SSH.RateBurst != 10 {
		t.Errorf("unexpected rate limit from template: %d/%d", cfg.SSH.RateLimit, cfg.SSH.RateBurst)
	}
}
