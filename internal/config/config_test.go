package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Delimiter != ">>>" {
		t.Errorf("Delimiter = %q, want %q", cfg.Delimiter, ">>>")
	}
	if len(cfg.Processors) != 0 {
		t.Errorf("Processors = %v, want none", cfg.Processors)
	}
	if cfg.Template != "" {
		t.Errorf("Template = %q, want empty", cfg.Template)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("valid file loads config", func(t *testing.T) {
		path := writeConfig(t, `delimiter: "---"
template: "reveal.html"
processors:
  - kind: tidy
  - kind: svglayers
    options:
      targetDir: "img"
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Delimiter != "---" {
			t.Errorf("Delimiter = %q, want %q", cfg.Delimiter, "---")
		}
		if cfg.Template != "reveal.html" {
			t.Errorf("Template = %q, want %q", cfg.Template, "reveal.html")
		}
		if len(cfg.Processors) != 2 {
			t.Fatalf("processor count = %d, want 2", len(cfg.Processors))
		}
		if cfg.Processors[0].Kind != "tidy" || cfg.Processors[1].Kind != "svglayers" {
			t.Errorf("processor order = [%s %s], want file order preserved",
				cfg.Processors[0].Kind, cfg.Processors[1].Kind)
		}
		if got := cfg.Processors[1].Options["targetDir"]; got != "img" {
			t.Errorf("svglayers targetDir option = %v, want %q", got, "img")
		}
	})

	t.Run("delimiter defaults when omitted", func(t *testing.T) {
		path := writeConfig(t, "processors:\n  - kind: tidy\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Delimiter != ">>>" {
			t.Errorf("Delimiter = %q, want default %q", cfg.Delimiter, ">>>")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := writeConfig(t, "delimiter: \">>>\"\nbogus: true\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("processor without kind rejected", func(t *testing.T) {
		path := writeConfig(t, "processors:\n  - options:\n      targetDir: x\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrEmptyKind) {
			t.Errorf("error = %v, want ErrEmptyKind", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("empty delimiter", func(t *testing.T) {
		cfg := &Config{}
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyDelimiter) {
			t.Errorf("error = %v, want ErrEmptyDelimiter", err)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}
