package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-dealsite/internal/fileutil"
	"github.com/alnah/go-dealsite/internal/site"
)

// ErrWritePage indicates a generated file could not be written.
var ErrWritePage = errors.New("failed to write output file")

// WriteResult records one written file.
type WriteResult struct {
	Path string // outputDir joined with the page path
	Size int
}

// Write stores pages under outputDir using atomic writes on the worker pool.
// With output.clean set, outputDir is removed first. The first failure in
// page order is returned.
func (g *Generator) Write(ctx context.Context, outputDir string, pages []site.Page) ([]WriteResult, error) {
	if g.cfg.Output.Clean && fileutil.DirExists(outputDir) {
		if err := fileutil.CleanDir(outputDir); err != nil {
			return nil, err
		}
		g.logger.Debug("cleaned output directory", "dir", outputDir)
	}

	results, errs := runIndexed(ctx, g.workers, len(pages), func(_ context.Context, i int) (WriteResult, error) {
		p := pages[i]
		dst, err := fileutil.SafeJoin(outputDir, p.Path)
		if err != nil {
			return WriteResult{}, fmt.Errorf("%w: %w", ErrWritePage, err)
		}
		if err := fileutil.WriteFileAtomic(dst, p.Content, fileutil.FilePerm); err != nil {
			return WriteResult{}, fmt.Errorf("%w: %w", ErrWritePage, err)
		}
		return WriteResult{Path: dst, Size: len(p.Content)}, nil
	})
	if err := firstError(errs); err != nil {
		return nil, err
	}

	g.logger.Debug("wrote output", "files", len(results), "dir", outputDir)
	return results, nil
}
