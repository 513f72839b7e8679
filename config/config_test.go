package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "database:\n  dsn: host=localhost\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Expected default env development, got %s", cfg.Server.Env)
	}
	if cfg.Uploads.MaxSizeMB != 5 {
		t.Errorf("Expected default max upload 5MB, got %d", cfg.Uploads.MaxSizeMB)
	}
	if cfg.Storage.Backend != "disk" {
		t.Errorf("Expected default storage backend disk, got %s", cfg.Storage.Backend)
	}
	if cfg.Admin.TokenExpireHours != 24 {
		t.Errorf("Expected default token expiry 24h, got %d", cfg.Admin.TokenExpireHours)
	}
	if cfg.MaxUploadBytes() != 5*1024*1024 {
		t.Errorf("Expected 5 MiB cap, got %d", cfg.MaxUploadBytes())
	}
	if cfg.IsProduction() {
		t.Error("Development config should not report production")
	}
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  env: production
  cors_origin: https://example.com
admin:
  password: secret
  jwt_secret: signing-key
uploads:
  max_size_mb: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("Expected production mode")
	}
	if cfg.Admin.Password != "secret" {
		t.Errorf("Expected admin password from file, got %q", cfg.Admin.Password)
	}
	if cfg.MaxUploadBytes() != 10*1024*1024 {
		t.Errorf("Expected 10 MiB cap, got %d", cfg.MaxUploadBytes())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("ADMIN_PASSWORD", "env-secret")
	t.Setenv("MAX_RESUME_SIZE_MB", "2")

	path := writeConfig(t, `
server:
  port: 9090
admin:
  password: file-secret
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Expected env PORT to win, got %d", cfg.Server.Port)
	}
	if cfg.Admin.Password != "env-secret" {
		t.Errorf("Expected env ADMIN_PASSWORD to win, got %q", cfg.Admin.Password)
	}
	if cfg.Uploads.MaxSizeMB != 2 {
		t.Errorf("Expected env MAX_RESUME_SIZE_MB to win, got %d", cfg.Uploads.MaxSizeMB)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
