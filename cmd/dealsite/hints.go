package main

import (
	"errors"

	"github.com/alnah/go-dealsite/internal/assets"
	"github.com/alnah/go-dealsite/internal/catalog"
	"github.com/alnah/go-dealsite/internal/config"
	"github.com/alnah/go-dealsite/internal/frontmatter"
	"github.com/alnah/go-dealsite/internal/generator"
	"github.com/alnah/go-dealsite/internal/hints"
)

// hintFor returns an actionable hint for well-known errors, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Paths)
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, frontmatter.ErrFormat):
		return hints.ForFormatError()
	case errors.Is(err, catalog.ErrInvalidDeal):
		return hints.ForValidation()
	case errors.Is(err, catalog.ErrNoDeals):
		return hints.ForDealsDir("")
	case errors.Is(err, catalog.ErrBlurbSchema):
		return hints.ForBlurbs()
	case errors.Is(err, generator.ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.TemplateNames())
	}
	return ""
}
