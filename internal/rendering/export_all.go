package rendering

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// ExportTarget is one output of ExportAll.
type ExportTarget struct {
	Format Format
	Path   string
}

// TargetsFor derives one target per format from base, replacing any
// extension base already has.
func TargetsFor(base string, formats []Format) []ExportTarget {
	base = strings.TrimSuffix(base, filepath.Ext(base))
	targets := make([]ExportTarget, 0, len(formats))
	for _, f := range formats {
		targets = append(targets, ExportTarget{Format: f, Path: base + "." + string(f)})
	}
	return targets
}

// ExportAll writes every target concurrently. Results are returned in target
// order. A missing browser for a PDF target is reported before any file is
// written. After that, the first failure cancels exports still rendering and
// files already written are left in place.
func ExportAll(ctx context.Context, doc *types.Document, targets []ExportTarget, opts ExportOptions) ([]*ExportResult, error) {
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if seen[t.Path] {
			return nil, &ExportError{Path: t.Path, Message: "path used by more than one export"}
		}
		seen[t.Path] = true
	}
	for _, t := range targets {
		if t.Format == FormatPDF {
			if _, err := FindChrome(opts.ChromePath); err != nil {
				return nil, fmt.Errorf("%s export failed: %w", t.Format, err)
			}
			break
		}
	}

	results := make([]*ExportResult, len(targets))
	g, gCtx := errgroup.WithContext(ctx)
	for i, t := range targets {
		snapshot := doc.Clone()
		g.Go(func() error {
			result, err := Export(gCtx, snapshot, t.Format, t.Path, opts)
			if err != nil {
				return fmt.Errorf("%s export failed: %w", t.Format, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
