package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-dealsite/internal/assets"
	"github.com/alnah/go-dealsite/internal/catalog"
	"github.com/alnah/go-dealsite/internal/config"
	"github.com/alnah/go-dealsite/internal/dateutil"
	"github.com/alnah/go-dealsite/internal/markdown"
	"github.com/alnah/go-dealsite/internal/site"
)

// ErrNilConfig is returned by New when no configuration is given.
var ErrNilConfig = errors.New("config is required")

// Generator builds a site from one configuration.
type Generator struct {
	cfg     *config.Config
	loader  assets.AssetLoader
	logger  *slog.Logger
	workers int
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress and warnings.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithWorkers sets the render and write pool size. Zero or less selects an
// automatic size.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithAssetLoader replaces the loader built from assets.basePath.
func WithAssetLoader(l assets.AssetLoader) Option {
	return func(g *Generator) {
		if l != nil {
			g.loader = l
		}
	}
}

// WithClock sets the time source used for the build year and date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New validates cfg and returns a Generator.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    dateutil.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.loader == nil {
		resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
		if err != nil {
			return nil, fmt.Errorf("initializing assets: %w", err)
		}
		if resolver.HasCustomLoader() {
			g.logger.Info("using custom assets", "path", cfg.Assets.BasePath)
		}
		g.loader = resolver
	}
	g.workers = ResolveWorkers(g.workers)

	return g, nil
}

// Load reads, validates and sorts the deals, derives categories and renders
// category blurbs. With validation.strict disabled, deals failing field
// validation are skipped with a warning; duplicate and reserved slugs still
// fail the load.
func (g *Generator) Load(ctx context.Context) (*catalog.Catalog, error) {
	r, err := markdown.New(g.cfg.Markdown.Engine)
	if err != nil {
		return nil, err
	}

	deals, err := catalog.LoadDir(ctx, g.cfg.Input.DealsDir, r)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("loaded deals", "count", len(deals), "dir", g.cfg.Input.DealsDir)

	deals, err = g.validate(deals)
	if err != nil {
		return nil, err
	}
	if len(deals) == 0 {
		return nil, fmt.Errorf("%w: every deal in %s failed validation", catalog.ErrNoDeals, g.cfg.Input.DealsDir)
	}

	blurbs, err := catalog.LoadBlurbs(g.cfg.Input.BlurbsFile)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(deals, blurbs)
	if err := catalog.RenderBlurbs(ctx, cat.Categories, markdown.NewGoldmark()); err != nil {
		return nil, err
	}
	g.logger.Debug("derived categories", "count", len(cat.Categories), "blurbs", len(blurbs))

	return cat, nil
}

func (g *Generator) validate(deals []*catalog.Deal) ([]*catalog.Deal, error) {
	if g.cfg.Validation.Strict {
		return deals, catalog.ValidateAll(deals)
	}

	kept := make([]*catalog.Deal, 0, len(deals))
	for _, d := range deals {
		if err := catalog.Validate(d); err != nil {
			g.logger.Warn("skipping invalid deal", "source", d.Source, "error", err)
			continue
		}
		kept = append(kept, d)
	}
	return kept, catalog.ValidateAll(kept)
}

// BuildContext resolves the build-wide page values from the configuration.
func (g *Generator) BuildContext() (site.BuildContext, error) {
	now := g.now()
	s := g.cfg.Site

	year, err := dateutil.ResolveYear(s.Year, now)
	if err != nil {
		return site.BuildContext{}, err
	}
	updated := ""
	if s.Updated != "" {
		if updated, err = dateutil.ResolveDate(s.Updated, now); err != nil {
			return site.BuildContext{}, err
		}
	}

	bc := site.BuildContext{
		SiteName:     s.Name,
		Tagline:      s.Tagline,
		Description:  s.Description,
		BaseURL:      s.BaseURL,
		Year:         year,
		YearToken:    s.YearToken,
		Updated:      updated,
		ContactEmail: s.ContactEmail,
		Copyright:    s.Copyright,
		DebounceMs:   g.cfg.Search.DebounceMs,
		RelatedLimit: g.cfg.Pages.RelatedLimit,
		Minify:       g.cfg.Output.Minify,
	}
	if g.usesGoldmark() {
		bc.ExtraStyles = []string{site.HighlightFile}
	}
	return bc, nil
}

func (g *Generator) usesGoldmark() bool {
	return strings.EqualFold(strings.TrimSpace(g.cfg.Markdown.Engine), config.EngineGoldmark)
}

// Render produces every page and static file of the site. HTML pages are
// rendered concurrently; the returned order is home, deals, categories,
// then sitemap.xml, robots.txt and the static assets.
func (g *Generator) Render(ctx context.Context, cat *catalog.Catalog) ([]site.Page, error) {
	bc, err := g.BuildContext()
	if err != nil {
		return nil, err
	}

	set, err := assets.LoadTemplateSet(g.loader)
	if err != nil {
		return nil, err
	}
	bundle, err := assets.LoadBundle(g.loader)
	if err != nil {
		return nil, err
	}
	renderer, err := site.NewRenderer(set, bc)
	if err != nil {
		return nil, err
	}

	jobs := g.pageJobs(renderer, cat, bc.RelatedLimit)
	pages, errs := runIndexed(ctx, g.workers, len(jobs), func(ctx context.Context, i int) (site.Page, error) {
		return jobs[i](ctx)
	})
	if err := firstError(errs); err != nil {
		return nil, err
	}

	sitemap, err := site.Sitemap(bc, cat.Deals, cat.Categories)
	if err != nil {
		return nil, err
	}
	pages = append(pages,
		site.Page{Path: site.SitemapFile, Content: sitemap},
		site.Page{Path: site.RobotsFile, Content: site.Robots(bc, g.cfg.Robots.Disallow)},
		site.Page{Path: site.StyleFile, Content: []byte(bundle.Style)},
		site.Page{Path: site.SearchScriptFile, Content: []byte(bundle.SearchScript)},
		site.Page{Path: site.CategoryScriptFile, Content: []byte(bundle.CategoryScript)},
		site.Page{Path: site.CopyScriptFile, Content: []byte(bundle.CopyScript)},
	)

	if g.usesGoldmark() {
		css, err := markdown.HighlightCSS(markdown.HighlightStyle)
		if err != nil {
			return nil, err
		}
		pages = append(pages, site.Page{Path: site.HighlightFile, Content: css})
	}

	g.logger.Debug("rendered site", "pages", len(pages), "workers", g.workers)
	return pages, nil
}

type pageJob func(context.Context) (site.Page, error)

func (g *Generator) pageJobs(r *site.Renderer, cat *catalog.Catalog, relatedLimit int) []pageJob {
	jobs := make([]pageJob, 0, 1+len(cat.Deals)+len(cat.Categories))

	jobs = append(jobs, func(ctx context.Context) (site.Page, error) {
		return r.Home(ctx, cat.Deals, cat.Categories)
	})
	for _, d := range cat.Deals {
		jobs = append(jobs, func(ctx context.Context) (site.Page, error) {
			return r.Deal(ctx, d, catalog.Related(cat.Deals, d, relatedLimit), cat.Deals)
		})
	}
	for _, c := range cat.Categories {
		jobs = append(jobs, func(ctx context.Context) (site.Page, error) {
			return r.Category(ctx, c, cat.Deals)
		})
	}
	return jobs
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	OutputDir  string
	Deals      int
	Categories int
	Files      []WriteResult
	Duration   time.Duration
}

// Bytes returns the total size of the written files.
func (r *BuildResult) Bytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += int64(f.Size)
	}
	return n
}

// Build runs Load, Render and Write into output.dir.
func (g *Generator) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	cat, err := g.Load(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := g.Render(ctx, cat)
	if err != nil {
		return nil, err
	}
	files, err := g.Write(ctx, g.cfg.Output.Dir, pages)
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		OutputDir:  g.cfg.Output.Dir,
		Deals:      len(cat.Deals),
		Categories: len(cat.Categories),
		Files:      files,
		Duration:   time.Since(start),
	}, nil
}
