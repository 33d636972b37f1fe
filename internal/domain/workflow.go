package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"markhound.dev/pkg/markhound/internal/adapter"
	"markhound.dev/pkg/markhound/internal/controller"
	m "markhound.dev/pkg/markhound/internal/model"
	"markhound.dev/pkg/markhound/pkg"
)

// findingsSpoolName is the streamed findings artifact written next to the
// YAML summary when reports are enabled.
const findingsSpoolName = "findings.gob"

// ScanArgs describes one scan: which directories to inspect, which markers
// categorize a test, and how many files to analyze concurrently.
type ScanArgs struct {
	// Root is the single directory to scan. Ignored when Packages is set.
	Root m.Path

	// Packages lists directories scanned independently in the given order.
	// Directories that do not exist are silently skipped.
	Packages []m.Path

	// Excluded is the marker set a test must intersect to count as marked.
	Excluded m.MarkerSet

	// Jobs is the number of files analyzed in parallel (minimum 1).
	Jobs int
}

// CheckArgs configures the check workflow.
type CheckArgs struct {
	ScanArgs

	// Reports is the directory scan artifacts are written to. Empty
	// disables persistence.
	Reports m.Path
}

// ReportArgs configures viewing a previously saved report.
type ReportArgs struct {
	Reports m.Path
}

// Workflow orchestrates file discovery, per-file analysis, result display
// and report persistence.
type Workflow interface {
	// Check scans for unmarked tests, displays the outcome, and persists a
	// report when configured. The returned summary carries the findings;
	// deciding the process exit code is left to the caller.
	Check(ctx context.Context, args CheckArgs) (*m.ScanSummary, error)

	// List displays per-file test statistics for the scanned directories.
	List(ctx context.Context, args ScanArgs) error

	// Report loads a previously saved summary and displays it.
	Report(ctx context.Context, args ReportArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	analyzer *Analyzer
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, reportStore adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		analyzer:        NewAnalyzer(),
	}
}

// Check implements the check workflow.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (*m.ScanSummary, error) {
	summary, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return nil, err
	}

	if args.Reports != "" {
		if err := w.persist(summary, args.Reports); err != nil {
			return nil, err
		}
	}

	if err := w.DisplaySummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("display summary: %w", err)
	}

	return summary, nil
}

// List implements the list workflow.
func (w *workflow) List(ctx context.Context, args ScanArgs) error {
	summary, err := w.scan(ctx, args)
	if err != nil {
		return err
	}

	if err := w.DisplayFileStats(ctx, summary.Files); err != nil {
		return fmt.Errorf("display stats: %w", err)
	}

	return nil
}

// Report implements the report-viewing workflow.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	summary, err := w.LoadSummary(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.DisplaySummary(ctx, summary); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	return nil
}

// scan discovers source files under the requested roots and analyzes them
// concurrently. Files are assembled in discovery order (roots in the given
// order, paths lexicographic within each root) regardless of which worker
// finishes first, so output is reproducible.
func (w *workflow) scan(ctx context.Context, args ScanArgs) (*m.ScanSummary, error) {
	roots := w.resolveRoots(args)

	var files []m.Path

	for _, root := range roots {
		found, err := w.ListSourceFiles(root)
		if err != nil {
			return nil, fmt.Errorf("list source files under %s: %w", root, err)
		}

		files = append(files, found...)
	}

	slog.Debug("discovered source files", "roots", len(roots), "files", len(files))

	results := make([]m.FileResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeJobs(args.Jobs))

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = w.analyzeFile(file, args.Excluded)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	summary := &m.ScanSummary{
		Roots:    roots,
		Excluded: args.Excluded.Sorted(),
	}

	for _, result := range results {
		if result.TestCount == 0 {
			continue
		}

		summary.Files = append(summary.Files, result)
	}

	return summary, nil
}

// analyzeFile reads and analyzes one file. Unreadable files degrade to an
// empty result so a single bad file never aborts the scan.
func (w *workflow) analyzeFile(file m.Path, excluded m.MarkerSet) m.FileResult {
	content, err := w.ReadFile(file)
	if err != nil {
		slog.Debug("skipping unreadable file", "path", file, "error", err)
		return m.FileResult{File: file}
	}

	total, unmarked := w.analyzer.Report(string(content), excluded)

	result := m.FileResult{File: file, TestCount: total}
	for _, name := range unmarked {
		result.Unmarked = append(result.Unmarked, m.UnmarkedTest{File: file, Function: name})
	}

	return result
}

// resolveRoots picks the directories to scan: the packages whitelist when
// present (existing directories only), otherwise the single root.
func (w *workflow) resolveRoots(args ScanArgs) []m.Path {
	if len(args.Packages) == 0 {
		return []m.Path{args.Root}
	}

	roots := make([]m.Path, 0, len(args.Packages))

	for _, pkgDir := range args.Packages {
		if !w.DirExists(pkgDir) {
			slog.Debug("skipping missing package directory", "path", pkgDir)
			continue
		}

		roots = append(roots, pkgDir)
	}

	return roots
}

// persist writes the YAML summary and streams the individual findings into
// a gob spool alongside it.
func (w *workflow) persist(summary *m.ScanSummary, reports m.Path) error {
	if err := os.MkdirAll(string(reports), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	spool, err := pkg.NewSpool[m.UnmarkedTest](filepath.Join(string(reports), findingsSpoolName))
	if err != nil {
		return fmt.Errorf("open findings spool: %w", err)
	}

	defer func() {
		if err := spool.Close(); err != nil {
			slog.Error("failed to close findings spool", "error", err)
		}
	}()

	if err := spool.AppendBatch(summary.UnmarkedTests()); err != nil {
		return fmt.Errorf("spool findings: %w", err)
	}

	if err := w.SaveSummary(reports, summary); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

func normalizeJobs(jobs int) int {
	if jobs < 1 {
		return 1
	}

	return jobs
}
