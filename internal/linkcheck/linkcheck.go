// Package linkcheck verifies that every relative link in a generated site
// points at a file that exists.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrBrokenLinks is returned by Report.Err when a link target is missing.
var ErrBrokenLinks = errors.New("broken links found")

// linkAttrs lists the selector and attribute pairs that are checked.
var linkAttrs = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"link[href]", "href"},
	{"script[src]", "src"},
	{"img[src]", "src"},
}

// Broken is one unresolved link.
type Broken struct {
	Page   string // Page path relative to the site root, slash-separated
	Target string // Attribute value as written
}

func (b Broken) String() string {
	return fmt.Sprintf("%s: %s", b.Page, b.Target)
}

// Report is the outcome of a link check.
type Report struct {
	Pages  int
	Links  int
	Broken []Broken
}

// OK reports whether every link resolved.
func (r *Report) OK() bool {
	return len(r.Broken) == 0
}

// Err returns nil when every link resolved, else an error listing the
// broken links.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Broken))
	for i, b := range r.Broken {
		lines[i] = "  " + b.String()
	}
	return fmt.Errorf("%w (%d):\n%s", ErrBrokenLinks, len(r.Broken), strings.Join(lines, "\n"))
}

// Check parses every .html file under dir and resolves each relative link
// against the page that contains it. External URLs, fragments and special
// schemes are skipped. A fragment on a relative link is ignored; only the
// file is checked.
func Check(ctx context.Context, dir string) (*Report, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	var pages []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".html") {
			pages = append(pages, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(pages)

	report := &Report{}
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := checkPage(root, p, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func checkPage(root, page string, report *Report) error {
	f, err := os.Open(page) // #nosec G304 -- path comes from WalkDir under root
	if err != nil {
		return fmt.Errorf("opening %s: %w", page, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", page, err)
	}

	rel, err := filepath.Rel(root, page)
	if err != nil {
		return err
	}
	rel = filepath.ToSlash(rel)
	report.Pages++

	for _, la := range linkAttrs {
		doc.Find(la.selector).Each(func(_ int, s *goquery.Selection) {
			target, _ := s.Attr(la.attr)
			filePart, ok := localTarget(target)
			if !ok {
				return
			}
			report.Links++
			if !exists(root, rel, filePart) {
				report.Broken = append(report.Broken, Broken{Page: rel, Target: target})
			}
		})
	}
	return nil
}

// localTarget returns the path part of a relative link, or ok=false for
// links that are not checked.
func localTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return "", false
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", true
	}
	if u.Scheme != "" || u.Host != "" {
		return "", false
	}
	if u.Path == "" {
		return "", false
	}
	return u.Path, true
}

// exists resolves target against the page's directory. Root-absolute paths
// resolve against the site root; directory targets need an index.html.
func exists(root, page, target string) bool {
	if target == "" {
		return false
	}
	var resolved string
	if strings.HasPrefix(target, "/") {
		resolved = path.Clean(strings.TrimPrefix(target, "/"))
	} else {
		resolved = path.Join(path.Dir(page), target)
	}
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return false
	}

	full := filepath.Join(root, filepath.FromSlash(resolved))
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err := os.Stat(filepath.Join(full, "index.html"))
		return err == nil
	}
	return true
}
