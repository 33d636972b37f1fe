// Package adapter contains infrastructure adapters for the markhound CLI.
package adapter

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	m "markhound.dev/pkg/markhound/internal/model"
)

// pythonExt identifies the source files markhound scans.
const pythonExt = ".py"

// SourceFSAdapter abstracts the filesystem operations the scan workflow
// relies on, so the domain layer can be tested without touching the disk.
type SourceFSAdapter interface {
	// ListSourceFiles walks root recursively and returns every Python file
	// found, sorted lexicographically. Entries that cannot be read during
	// the walk are skipped rather than aborting the scan.
	ListSourceFiles(root m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// DirExists reports whether path exists and is a directory.
	DirExists(path m.Path) bool
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter implementation.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListSourceFiles walks root and collects Python files.
func (a *LocalSourceFSAdapter) ListSourceFiles(root m.Path) ([]m.Path, error) {
	var files []m.Path

	err := filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("skipping unreadable entry", "path", path, "error", err)

			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() || filepath.Ext(path) != pythonExt {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// DirExists reports whether the path is an existing directory.
func (a *LocalSourceFSAdapter) DirExists(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}
