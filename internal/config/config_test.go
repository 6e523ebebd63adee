package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REGSTUB_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("REGSTUB_API_BASE", "")
	t.Setenv("REGSTUB_STUB_BASE", "")

	cfg := Load()
	if cfg.APIBase != "" {
		t.Errorf("expected empty api base, got %q", cfg.APIBase)
	}
	if cfg.StubBase != DefaultStubBase {
		t.Errorf("expected default stub base, got %q", cfg.StubBase)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("REGSTUB_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("REGSTUB_API_BASE", "http://example.com/api/")
	t.Setenv("REGSTUB_STUB_BASE", "/var/stub")

	cfg := Load()
	if cfg.APIBase != "http://example.com/api/" {
		t.Errorf("unexpected api base: %q", cfg.APIBase)
	}
	if cfg.StubBase != "/var/stub" {
		t.Errorf("unexpected stub base: %q", cfg.StubBase)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_base: http://file.example.com/api/\nstub_base: /file/stub\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REGSTUB_CONFIG", path)
	t.Setenv("REGSTUB_API_BASE", "")
	t.Setenv("REGSTUB_STUB_BASE", "")

	cfg := Load()
	if cfg.APIBase != "http://file.example.com/api/" {
		t.Errorf("unexpected api base: %q", cfg.APIBase)
	}
	if cfg.StubBase != "/file/stub" {
		t.Errorf("unexpected stub base: %q", cfg.StubBase)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_base: http://file.example.com/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REGSTUB_CONFIG", path)
	t.Setenv("REGSTUB_API_BASE", "http://env.example.com/")

	if got := APIBase(); got != "http://env.example.com/" {
		t.Errorf("expected env to override file, got %q", got)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_base: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REGSTUB_CONFIG", path)
	t.Setenv("REGSTUB_API_BASE", "")
	t.Setenv("REGSTUB_STUB_BASE", "")

	cfg := Load()
	if cfg.APIBase != "" {
		t.Errorf("expected malformed file to be ignored, got api base %q", cfg.APIBase)
	}
	if cfg.StubBase != DefaultStubBase {
		t.Errorf("expected default stub base, got %q", cfg.StubBase)
	}
}
