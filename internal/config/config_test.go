package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config", "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
	return path
}

func TestLoad_Valid(t *testing.T) {
	writeConfig(t, `
http:
  port: 8080
fauna:
  secret: test-secret
`)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Pagination.DefaultPageSize != 64 {
		t.Errorf("default page size = %d, want 64", cfg.Pagination.DefaultPageSize)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("shutdown = %d, want default 10", cfg.HTTP.ShutdownSec)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("FAUNA_SECRET", "from-env")
	writeConfig(t, `
http:
  port: 8080
fauna:
  secret: ${FAUNA_SECRET}
  endpoint: ${FAUNA_ENDPOINT:-http://localhost:8443}
`)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fauna.Secret != "from-env" {
		t.Errorf("secret = %q, want from-env", cfg.Fauna.Secret)
	}
	if cfg.Fauna.Endpoint != "http://localhost:8443" {
		t.Errorf("endpoint = %q, want the :- default", cfg.Fauna.Endpoint)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	writeConfig(t, `
http:
  port: 8080
`)

	if _, err := Load("test"); err == nil {
		t.Fatal("expected error for missing fauna.secret")
	}
}

func TestValidate_PageSizeBounds(t *testing.T) {
	cfg := Config{
		HTTP:  HTTPConfig{Port: 8080},
		Fauna: FaunaConfig{Secret: "s"},
		Pagination: PaginationConfig{
			DefaultPageSize: 2000,
			MaxPageSize:     1000,
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default exceeds max page size")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
	if _, err := Load("nope"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
