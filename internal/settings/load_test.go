package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeSettings(t, `
distro_id = "debian"
repository_sources = ["https://deb.example.org/main"]
dependencies = ["curl", "jq"]
command_timeout_secs = 30
refresh_retries = 1
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.DistroID != "debian" {
		t.Errorf("DistroID = %q", s.DistroID)
	}
	if len(s.Dependencies) != 2 || s.Dependencies[0] != "curl" {
		t.Errorf("Dependencies = %v", s.Dependencies)
	}
	if got := s.CommandTimeout(); got != 30*time.Second {
		t.Errorf("CommandTimeout = %v", got)
	}
	if got := s.RetryBound(); got != 1 {
		t.Errorf("RetryBound = %d", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeSettings(t, `distro_id = "alpine"`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.CommandTimeout(); got != DefaultCommandTimeout {
		t.Errorf("CommandTimeout = %v, want default", got)
	}
	if got := s.RetryBound(); got != DefaultRefreshRetries {
		t.Errorf("RetryBound = %d, want default", got)
	}
}

func TestLoadZeroRetriesIsExplicit(t *testing.T) {
	path := writeSettings(t, "distro_id = \"alpine\"\nrefresh_retries = 0\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.RetryBound(); got != 0 {
		t.Errorf("RetryBound = %d, want 0", got)
	}
}

func TestLoadUnknownKeysIgnored(t *testing.T) {
	path := writeSettings(t, `
distro_id = "fedora"
some_future_key = true
`)
	if _, err := Load(path); err != nil {
		t.Fatalf("Load with unknown key: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// A missing file is a configuration problem; the CLI maps it to the
	// config exit code like every other settings failure.
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("missing file should classify as a settings error: %v", err)
	}
}

func TestLoadMalformedSyntax(t *testing.T) {
	path := writeSettings(t, "distro_id = [unclosed")
	_, err := Load(path)
	if !errors.Is(err, ErrMalformedSyntax) {
		t.Fatalf("err = %v, want ErrMalformedSyntax", err)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("ErrMalformedSyntax should wrap ErrInvalid")
	}
}

func TestLoadLenientSkipsValidation(t *testing.T) {
	path := writeSettings(t, `dependencies = ["curl"]`)
	if _, err := Load(path); err == nil {
		t.Fatal("strict Load should reject settings without distro_id or overrides")
	}
	s, err := LoadLenient(path)
	if err != nil {
		t.Fatalf("LoadLenient: %v", err)
	}
	if len(s.Dependencies) != 1 {
		t.Errorf("Dependencies = %v", s.Dependencies)
	}
}

func TestLoadCustomOverrides(t *testing.T) {
	path := writeSettings(t, `
refresh_command = "mypkg sync"
install_command = "mypkg add"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.HasOverrides() {
		t.Error("HasOverrides = false")
	}
}
