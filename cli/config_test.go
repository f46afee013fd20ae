package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gem/scanner"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gem.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[scanner]
strict = true

[output]
format = "yaml"

[check]
resolve = true
`)
	cfg, got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Mode() != scanner.Strict || cfg.Output.Format != FormatYAML || !cfg.Check.Resolve {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, _, err := LoadConfig(writeConfig(t, "[scanner]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode() != scanner.Permissive || cfg.Output.Format != FormatText || cfg.Check.Resolve {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"[output]\nformat = \"xml\"\n", `output.format must be one of text, pretty, yaml, got "xml"`},
		{"[scanner]\nstrictt = true\n", "unknown config keys"},
		{"[scanner\n", "failed to read config file"},
	}
	for _, tt := range tests {
		_, _, err := LoadConfig(writeConfig(t, tt.body))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("LoadConfig(%q) error = %v, want %q", tt.body, err, tt.want)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
