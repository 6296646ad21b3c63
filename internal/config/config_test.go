package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-dealsite/internal/dateutil"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Site.YearToken != "{year}" {
		t.Errorf("Site.YearToken = %q, want {year}", cfg.Site.YearToken)
	}
	if !cfg.Validation.Strict {
		t.Error("Validation.Strict = false, want true")
	}
	if cfg.Search.DebounceMs != 200 {
		t.Errorf("Search.DebounceMs = %d, want 200", cfg.Search.DebounceMs)
	}
	if cfg.Pages.RelatedLimit != 3 {
		t.Errorf("Pages.RelatedLimit = %d, want 3", cfg.Pages.RelatedLimit)
	}
	if cfg.Markdown.Engine != EngineBasic {
		t.Errorf("Markdown.Engine = %q, want %q", cfg.Markdown.Engine, EngineBasic)
	}
	if len(cfg.Robots.Disallow) != len(DefaultDisallow) {
		t.Errorf("Robots.Disallow = %v, want %v", cfg.Robots.Disallow, DefaultDisallow)
	}

	cfg.Robots.Disallow[0] = "/changed/"
	if DefaultDisallow[0] == "/changed/" {
		t.Error("DefaultConfig() shares DefaultDisallow backing array")
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: unexpected error %v", err)
	}
	err := validateFieldLength("test.field", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("value over limit: error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "test.field") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		errText string
	}{
		{
			name:    "site name required",
			mutate:  func(c *Config) { c.Site.Name = " " },
			wantErr: ErrInvalidValue,
			errText: "site.name",
		},
		{
			name:    "site name too long",
			mutate:  func(c *Config) { c.Site.Name = strings.Repeat("a", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "relative base URL",
			mutate:  func(c *Config) { c.Site.BaseURL = "/site" },
			wantErr: ErrInvalidValue,
			errText: "site.baseURL",
		},
		{
			name:    "bad year",
			mutate:  func(c *Config) { c.Site.Year = "next" },
			wantErr: ErrInvalidValue,
			errText: "site.year",
		},
		{
			name:    "bad updated format",
			mutate:  func(c *Config) { c.Site.Updated = "auto:" },
			wantErr: ErrInvalidValue,
			errText: "site.updated",
		},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Markdown.Engine = "pandoc" },
			wantErr: ErrInvalidValue,
			errText: "markdown.engine",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Search.DebounceMs = -1 },
			wantErr: ErrInvalidValue,
			errText: "search.debounceMs",
		},
		{
			name:    "related limit too high",
			mutate:  func(c *Config) { c.Pages.RelatedLimit = MaxRelatedLimit + 1 },
			wantErr: ErrInvalidValue,
			errText: "pages.relatedLimit",
		},
		{
			name:    "relative disallow path",
			mutate:  func(c *Config) { c.Robots.Disallow = []string{"_data/"} },
			wantErr: ErrInvalidValue,
			errText: "robots.disallow[0]",
		},
		{
			name:    "empty output dir",
			mutate:  func(c *Config) { c.Output.Dir = "" },
			wantErr: ErrInvalidValue,
			errText: "output.dir",
		},
		{
			name:   "goldmark engine is valid",
			mutate: func(c *Config) { c.Markdown.Engine = "goldmark" },
		},
		{
			name:   "literal year is valid",
			mutate: func(c *Config) { c.Site.Year = "2025" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q does not contain %q", err, tt.errText)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `site:
  name: Referral Codes
  baseURL: https://deals.example
output:
  dir: dist
pages:
  relatedLimit: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Site.Name != "Referral Codes" {
		t.Errorf("Site.Name = %q", cfg.Site.Name)
	}
	if cfg.Output.Dir != "dist" {
		t.Errorf("Output.Dir = %q, want dist", cfg.Output.Dir)
	}
	if cfg.Pages.RelatedLimit != 5 {
		t.Errorf("Pages.RelatedLimit = %d, want 5", cfg.Pages.RelatedLimit)
	}
	// Keys absent from the file keep defaults.
	if !cfg.Output.Minify || cfg.Search.DebounceMs != 200 || cfg.Site.YearToken != "{year}" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadConfig_LiteralYearToken(t *testing.T) {
	t.Parallel()

	// Deal files written with a literal year keep working when that year is the token.
	path := filepath.Join(t.TempDir(), "dealsite.yaml")
	if err := os.WriteFile(path, []byte("site:\n  yearToken: \"2025\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Site.YearToken != "2025" {
		t.Fatalf("Site.YearToken = %q, want 2025", cfg.Site.YearToken)
	}
	got := dateutil.ReplaceYear("Best bank bonus 2025", cfg.Site.YearToken, 2031)
	if got != "Best bank bonus 2031" {
		t.Errorf("ReplaceYear() = %q, want Best bank bonus 2031", got)
	}
	if got := dateutil.ReplaceYear("Best bank bonus 2025", DefaultConfig().Site.YearToken, 2031); got != "Best bank bonus 2025" {
		t.Errorf("default token rewrote a literal year: %q", got)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty name", path: "", wantErr: ErrEmptyConfigName},
		{name: "missing file", path: filepath.Join(dir, "absent.yaml"), wantErr: ErrConfigNotFound},
		{name: "unknown key", path: write("unknown.yaml", "site:\n  nmae: x\n"), wantErr: ErrConfigParse},
		{name: "invalid value", path: write("invalid.yaml", "markdown:\n  engine: pandoc\n"), wantErr: ErrInvalidValue},
		{name: "name not found", path: "definitely-not-a-config-name", wantErr: ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_NotFoundPaths(t *testing.T) {
	t.Parallel()

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "absent.yaml")
		_, err := LoadConfig(missing)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("LoadConfig() error = %v, want *NotFoundError", err)
		}
		if len(nf.Paths) != 1 || nf.Paths[0] != missing {
			t.Errorf("Paths = %v, want [%s]", nf.Paths, missing)
		}
		if !strings.Contains(err.Error(), missing) {
			t.Errorf("Error() = %q, want it to name %s", err.Error(), missing)
		}
	})

	t.Run("config name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("definitely-not-a-config-name")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("LoadConfig() error = %v, want *NotFoundError", err)
		}
		if len(nf.Paths) < 2 {
			t.Fatalf("Paths = %v, want every searched location", nf.Paths)
		}
		if nf.Paths[0] != "definitely-not-a-config-name.yaml" || nf.Paths[1] != "definitely-not-a-config-name.yml" {
			t.Errorf("Paths = %v, want local .yaml then .yml first", nf.Paths)
		}
		if !strings.Contains(err.Error(), "tried ") {
			t.Errorf("Error() = %q, want the tried list", err.Error())
		}
	})
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "dealsite", want: false},
		{in: "site.yaml", want: true},
		{in: "site.yml", want: true},
		{in: "./site", want: true},
		{in: `conf\site`, want: true},
	}
	for _, tt := range tests {
		if got := isFilePath(tt.in); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
