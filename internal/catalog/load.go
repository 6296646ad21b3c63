package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-dealsite/internal/frontmatter"
	"github.com/alnah/go-dealsite/internal/markdown"
)

// ErrNoDeals indicates the deals directory holds no markdown files.
var ErrNoDeals = errors.New("no deal files found")

// SourceExt is the extension of deal source files.
const SourceExt = ".md"

// Catalog is the loaded, sorted set of deals and their categories.
type Catalog struct {
	Deals      []*Deal
	Categories []*Category
}

// New sorts deals by priority and derives categories.
func New(deals []*Deal, blurbs Blurbs) *Catalog {
	SortByPriority(deals)
	return &Catalog{
		Deals:      deals,
		Categories: GroupCategories(deals, blurbs),
	}
}

// Sources lists the deal files in dir, sorted by name.
func Sources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading deals directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != SourceExt {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDeals, dir)
	}
	return files, nil
}

// LoadFile reads and parses one source file into a Deal.
func LoadFile(ctx context.Context, path string, r markdown.Renderer) (*Deal, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from Sources
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := frontmatter.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewDeal(ctx, path, doc, r)
}

// LoadDir loads every deal in dir and returns them sorted by priority.
// The first unreadable or malformed file aborts the load.
func LoadDir(ctx context.Context, dir string, r markdown.Renderer) ([]*Deal, error) {
	files, err := Sources(dir)
	if err != nil {
		return nil, err
	}
	deals := make([]*Deal, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, err := LoadFile(ctx, f, r)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	SortByPriority(deals)
	return deals, nil
}
