package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
token = "tok123"
endpoint = "https://ghe.example.com/api/graphql"

[defaults]
owner = "my-org"
project = 5
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Token != "tok123" {
			t.Errorf("got token %q, want %q", cfg.Token, "tok123")
		}
		if cfg.Endpoint != "https://ghe.example.com/api/graphql" {
			t.Errorf("unexpected endpoint: %q", cfg.Endpoint)
		}
		if cfg.Defaults.Owner != "my-org" || cfg.Defaults.Project != 5 {
			t.Errorf("unexpected defaults: %+v", cfg.Defaults)
		}
		if cfg.Defaults.User {
			t.Error("expected organization defaults")
		}
	})

	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Token != "" || cfg.Defaults.Owner != "" {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("token = ["), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestResolveToken(t *testing.T) {
	cfg := &Config{Token: "from-config"}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-env")
		if got := cfg.ResolveToken("from-flag"); got != "from-flag" {
			t.Errorf("got %q, want %q", got, "from-flag")
		}
	})

	t.Run("environment beats config", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-env")
		if got := cfg.ResolveToken(""); got != "from-env" {
			t.Errorf("got %q, want %q", got, "from-env")
		}
	})

	t.Run("config fallback", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		if got := cfg.ResolveToken(""); got != "from-config" {
			t.Errorf("got %q, want %q", got, "from-config")
		}
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "project-update", "config.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
