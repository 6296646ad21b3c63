// Package config defines the site configuration file and its defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-dealsite/internal/dateutil"
	"github.com/alnah/go-dealsite/internal/fileutil"
	"github.com/alnah/go-dealsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// NotFoundError lists the locations searched for a missing config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	if len(e.Paths) == 1 {
		return ErrConfigNotFound.Error() + ": " + e.Paths[0]
	}
	return ErrConfigNotFound.Error() + ": tried " + strings.Join(e.Paths, ", ")
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// Field length limits.
const (
	MaxNameLength      = 100  // Site name
	MaxEmailLength     = 254  // RFC 5321
	MaxURLLength       = 2048 // Browser limit
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxTextLength      = 500  // Tagline, description, copyright
	MaxTokenLength     = 20   // "{year}"
	MaxDateLength      = 30   // "auto:MMMM D, YYYY"
	MaxDebounceMs      = 5000
	MaxRelatedLimit    = 24
	MaxDisallowEntries = 50
)

// Markdown engine names accepted in markdown.engine.
const (
	EngineBasic    = "basic"
	EngineGoldmark = "goldmark"
)

// DefaultConfigName is looked up when no --config flag is given.
const DefaultConfigName = "dealsite"

// Config holds all configuration for a site build.
type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Assets     AssetsConfig     `yaml:"assets"`
	Markdown   MarkdownConfig   `yaml:"markdown"`
	Validation ValidationConfig `yaml:"validation"`
	Search     SearchConfig     `yaml:"search"`
	Pages      PagesConfig      `yaml:"pages"`
	Robots     RobotsConfig     `yaml:"robots"`
}

// SiteConfig defines site identity.
type SiteConfig struct {
	Name         string `yaml:"name"`
	Tagline      string `yaml:"tagline"`      // Home hero heading
	Description  string `yaml:"description"`  // Home meta description
	BaseURL      string `yaml:"baseURL"`      // Absolute, used in canonical links and sitemap
	Year         string `yaml:"year"`         // "auto" or YYYY
	YearToken    string `yaml:"yearToken"`    // Replaced by the year in titles (default "{year}")
	Updated      string `yaml:"updated"`      // "auto", "auto:FORMAT" or literal text
	ContactEmail string `yaml:"contactEmail"` // Optional
	Copyright    string `yaml:"copyright"`    // Optional footer line
}

// InputConfig defines where sources are read from.
type InputConfig struct {
	DealsDir   string `yaml:"dealsDir"`
	BlurbsFile string `yaml:"blurbsFile"` // Optional JSON sidecar
}

// OutputConfig defines the output tree.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Minify bool   `yaml:"minify"`
	Clean  bool   `yaml:"clean"` // Remove Dir before writing
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// MarkdownConfig selects the body renderer.
type MarkdownConfig struct {
	Engine string `yaml:"engine"` // "basic" or "goldmark"
}

// ValidationConfig controls deal validation.
type ValidationConfig struct {
	Strict bool `yaml:"strict"` // false = log and continue
}

// SearchConfig tunes the browser search box.
type SearchConfig struct {
	DebounceMs int `yaml:"debounceMs"`
}

// PagesConfig tunes page content.
type PagesConfig struct {
	RelatedLimit int `yaml:"relatedLimit"`
}

// RobotsConfig lists robots.txt Disallow paths.
type RobotsConfig struct {
	Disallow []string `yaml:"disallow"`
}

// DefaultDisallow are the paths hidden from crawlers by default.
var DefaultDisallow = []string{"/_data/", "/*.md", "/.git/", "/dealsite.yaml"}

// DefaultConfig returns a configuration that builds from ./_data into ./public.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:        "Deals",
			Tagline:     "Verified Referral Codes That Actually Work",
			Description: "Verified referral codes and promo codes, tested every day. Save money with trusted offers.",
			BaseURL:     "https://example.com",
			Year:        dateutil.Auto,
			YearToken:   "{year}",
			Updated:     "auto:MMMM D, YYYY",
		},
		Input: InputConfig{
			DealsDir:   filepath.Join("_data", "deals"),
			BlurbsFile: filepath.Join("_data", "categories.json"),
		},
		Output:     OutputConfig{Dir: "public", Minify: true},
		Assets:     AssetsConfig{BasePath: ""},
		Markdown:   MarkdownConfig{Engine: EngineBasic},
		Validation: ValidationConfig{Strict: true},
		Search:     SearchConfig{DebounceMs: 200},
		Pages:      PagesConfig{RelatedLimit: 3},
		Robots:     RobotsConfig{Disallow: append([]string(nil), DefaultDisallow...)},
	}
}

// Validate checks field lengths, enum values and ranges.
// Called automatically by LoadConfig, but available for callers that
// build a Config in code.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site.name", c.Site.Name, MaxNameLength},
		{"site.tagline", c.Site.Tagline, MaxTextLength},
		{"site.description", c.Site.Description, MaxTextLength},
		{"site.baseURL", c.Site.BaseURL, MaxURLLength},
		{"site.yearToken", c.Site.YearToken, MaxTokenLength},
		{"site.updated", c.Site.Updated, MaxDateLength},
		{"site.contactEmail", c.Site.ContactEmail, MaxEmailLength},
		{"site.copyright", c.Site.Copyright, MaxTextLength},
		{"input.dealsDir", c.Input.DealsDir, MaxPathLength},
		{"input.blurbsFile", c.Input.BlurbsFile, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Site.Name) == "" {
		return fmt.Errorf("%w: site.name: required", ErrInvalidValue)
	}
	if err := validateBaseURL(c.Site.BaseURL); err != nil {
		return err
	}
	if _, err := dateutil.ResolveYear(c.Site.Year, dateutil.Now()); err != nil {
		return fmt.Errorf("%w: site.year: %v", ErrInvalidValue, err)
	}
	if c.Site.Updated != "" {
		if _, err := dateutil.ResolveDate(c.Site.Updated, dateutil.Now()); err != nil {
			return fmt.Errorf("%w: site.updated: %v", ErrInvalidValue, err)
		}
	}
	if strings.TrimSpace(c.Input.DealsDir) == "" {
		return fmt.Errorf("%w: input.dealsDir: required", ErrInvalidValue)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("%w: output.dir: required", ErrInvalidValue)
	}

	switch strings.ToLower(c.Markdown.Engine) {
	case "", EngineBasic, EngineGoldmark:
		// valid
	default:
		return fmt.Errorf("%w: markdown.engine: %q (must be %s or %s)", ErrInvalidValue, c.Markdown.Engine, EngineBasic, EngineGoldmark)
	}

	if c.Search.DebounceMs < 0 || c.Search.DebounceMs > MaxDebounceMs {
		return fmt.Errorf("%w: search.debounceMs: must be between 0 and %d, got %d", ErrInvalidValue, MaxDebounceMs, c.Search.DebounceMs)
	}
	if c.Pages.RelatedLimit < 0 || c.Pages.RelatedLimit > MaxRelatedLimit {
		return fmt.Errorf("%w: pages.relatedLimit: must be between 0 and %d, got %d", ErrInvalidValue, MaxRelatedLimit, c.Pages.RelatedLimit)
	}

	if len(c.Robots.Disallow) > MaxDisallowEntries {
		return fmt.Errorf("%w: robots.disallow: %d entries (max %d)", ErrInvalidValue, len(c.Robots.Disallow), MaxDisallowEntries)
	}
	for i, p := range c.Robots.Disallow {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: robots.disallow[%d]: %q must start with /", ErrInvalidValue, i, p)
		}
		if err := validateFieldLength(fmt.Sprintf("robots.disallow[%d]", i), p, MaxURLLength); err != nil {
			return err
		}
	}

	return nil
}

// validateBaseURL requires an absolute http(s) URL.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: site.baseURL: %q must be an absolute http(s) URL", ErrInvalidValue, raw)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Paths: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindDefault returns the path of the default config file if one exists
// in the standard locations, or "" when there is none.
func FindDefault() string {
	path, err := resolveConfigPath(DefaultConfigName)
	if err != nil {
		return ""
	}
	return path
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return fileutil.IsFilePath(s) || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-dealsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-dealsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Paths: triedPaths}
}
