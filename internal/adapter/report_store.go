package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "markhound.dev/pkg/markhound/internal/model"
)

// reportFileName is the summary document written into the reports directory.
const reportFileName = "markhound-report.yaml"

// ReportStore persists scan summaries so they can be inspected after a run
// (e.g. by the report command, or archived as a CI artifact).
type ReportStore interface {
	SaveSummary(dir m.Path, summary *m.ScanSummary) error
	LoadSummary(dir m.Path) (*m.ScanSummary, error)
}

// LocalReportStore stores summaries as YAML documents on the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveSummary writes the summary into dir, creating the directory if needed.
func (s *LocalReportStore) SaveSummary(dir m.Path, summary *m.ScanSummary) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// LoadSummary reads a previously saved summary from dir.
func (s *LocalReportStore) LoadSummary(dir m.Path) (*m.ScanSummary, error) {
	data, err := os.ReadFile(filepath.Join(string(dir), reportFileName))
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}

	var summary m.ScanSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}

	return &summary, nil
}
