package main

import (
	"errors"
	"os"

	"github.com/alnah/go-dealsite/internal/assets"
	"github.com/alnah/go-dealsite/internal/catalog"
	"github.com/alnah/go-dealsite/internal/config"
	"github.com/alnah/go-dealsite/internal/dateutil"
	"github.com/alnah/go-dealsite/internal/fileutil"
	"github.com/alnah/go-dealsite/internal/frontmatter"
	"github.com/alnah/go-dealsite/internal/generator"
	"github.com/alnah/go-dealsite/internal/linkcheck"
	"github.com/alnah/go-dealsite/internal/markdown"
	"github.com/alnah/go-dealsite/internal/site"
)

// Exit codes for the dealsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built or check passed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, source format or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/format/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, dateutil.ErrInvalidYear) ||
		errors.Is(err, frontmatter.ErrFormat) ||
		errors.Is(err, catalog.ErrInvalidDeal) ||
		errors.Is(err, catalog.ErrDuplicateSlug) ||
		errors.Is(err, catalog.ErrReservedSlug) ||
		errors.Is(err, catalog.ErrBlurbSchema) ||
		errors.Is(err, markdown.ErrUnknownEngine) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, site.ErrTemplateParse) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, catalog.ErrNoDeals) ||
		errors.Is(err, generator.ErrWritePage) ||
		errors.Is(err, fileutil.ErrUnsafeRemove) ||
		errors.Is(err, fileutil.ErrOutsideRoot) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, linkcheck.ErrBrokenLinks) {
		return ExitIO
	}

	return ExitGeneral
}
