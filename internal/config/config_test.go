package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
http_server:
  address: "localhost:8082"
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Env: "dev",
		HTTPServer: HTTPServer{
			Addr:            "localhost:8082",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
http_server:
  address: "localhost:8082"
  shutdown_timeout: 2s
`)
	t.Setenv("HTTP_SERVER_ADDR", "0.0.0.0:9000")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Addr != "0.0.0.0:9000" {
		t.Fatalf("Addr = %q, want env override", got.Addr)
	}
	if got.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 2s", got.ShutdownTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("Load(\"\") error = nil")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) error = nil")
	}

	path := writeConfig(t, `
http_server:
  address: "localhost:8082"
`)
	// Setenv registers the restore; the variable must be absent, not empty.
	t.Setenv("ENV", "unused")
	os.Unsetenv("ENV")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() without env error = nil")
	}
}
