package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakakWasTaken/biome/internal/printer"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[format]
max_width = 100
indent_width = 4
use_tabs = true
line_ending = "crlf"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	opts := cfg.PrinterOptions()
	want := printer.Options{MaxWidth: 100, IndentWidth: 4, UseTabs: true, LineEnding: printer.LineEndingCRLF}
	if opts != want {
		t.Fatalf("options = %+v, want %+v", opts, want)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[format]
max_width = 120
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format.IndentWidth != 2 || cfg.Format.LineEnding != "lf" {
		t.Fatalf("defaults not applied: %+v", cfg.Format)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"zero width", "[format]\nmax_width = 0\n", ErrBadWidth},
		{"negative width", "[format]\nmax_width = -4\n", ErrBadWidth},
		{"negative indent", "[format]\nindent_width = -1\n", ErrBadIndentWidth},
	}
	for _, tc := range cases {
		path := writeConfig(t, t.TempDir(), tc.content)
		_, err := Load(path)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestLoadRejectsUnknownKeysAndBadLineEnding(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[format]\nwidth = 80\n")
	if _, err := Load(path); err == nil {
		t.Errorf("unknown key must be rejected")
	}
	path = writeConfig(t, t.TempDir(), "[format]\nline_ending = \"cr\"\n")
	if _, err := Load(path); err == nil {
		t.Errorf("unknown line ending must be rejected")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[format]\nmax_width = 90\n")
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok := Discover(nested)
	if !ok {
		t.Fatalf("Discover found nothing from %s", nested)
	}
	if path != filepath.Join(root, FileName) {
		t.Fatalf("Discover = %s", path)
	}
}

func TestDiscoverMissing(t *testing.T) {
	if path, ok := Discover(t.TempDir()); ok {
		t.Fatalf("unexpected config at %s", path)
	}
}
