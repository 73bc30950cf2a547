package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"import-duty/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr: got %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Format.Locale != "en-US" {
		t.Errorf("locale: got %q", cfg.Format.Locale)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "rates": {"file": "/etc/import-duty/rates.hcl"},
  "server": {"addr": ":9000", "read_timeout": "3s"},
  "logging": {"level": "warn"}
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IMPORT_DUTY_ADDR", ":9100")
	t.Setenv("IMPORT_DUTY_LOCALE", "ka-GE")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rates.File != "/etc/import-duty/rates.hcl" {
		t.Errorf("rates file: got %q", cfg.Rates.File)
	}
	if cfg.Server.Addr != ":9100" {
		t.Errorf("env should win over file: got %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("read timeout: got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout.Duration != 10*time.Second {
		t.Errorf("write timeout should keep its default, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Format.Locale != "ka-GE" {
		t.Errorf("locale: got %q", cfg.Format.Locale)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level: got %q", cfg.Logging.Level)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server.ShutdownTimeout = Duration{42 * time.Second}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Server.ShutdownTimeout.Duration != 42*time.Second {
		t.Errorf("shutdown timeout: got %v", loaded.Server.ShutdownTimeout)
	}
}
