package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-dealsite/internal/catalog"
	"github.com/alnah/go-dealsite/internal/config"
)

func TestHintFor(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "ana", ".config", "go-dealsite", "dealsite.yaml")

	tests := []struct {
		name        string
		err         error
		wantContain string
		wantAbsent  string
	}{
		{
			name:        "config not found names user config location",
			err:         fmt.Errorf("loading: %w", &config.NotFoundError{Paths: []string{"dealsite.yaml", "dealsite.yml", filepath.ToSlash(userPath)}}),
			wantContain: "or create " + filepath.ToSlash(userPath),
		},
		{
			name:        "config not found without searched paths",
			err:         fmt.Errorf("%w: x.yaml", config.ErrConfigNotFound),
			wantContain: "use --config",
			wantAbsent:  "or create",
		},
		{
			name:        "explicit file path",
			err:         &config.NotFoundError{Paths: []string{"site/dealsite.yaml"}},
			wantContain: "use --config",
			wantAbsent:  "or create",
		},
		{
			name:        "validation",
			err:         fmt.Errorf("%w: acme.md", catalog.ErrInvalidDeal),
			wantContain: "validation.strict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.wantContain)
			}
			if tt.wantAbsent != "" && strings.Contains(got, tt.wantAbsent) {
				t.Errorf("hintFor() = %q, should not contain %q", got, tt.wantAbsent)
			}
		})
	}

	if got := hintFor(fmt.Errorf("unrelated")); got != "" {
		t.Errorf("hintFor(unrelated) = %q, want empty", got)
	}
}
