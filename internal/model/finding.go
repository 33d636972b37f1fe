package model

import "fmt"

// UnmarkedTest identifies a test function that carries none of the excluded
// markers. It is never mutated once produced.
type UnmarkedTest struct {
	File     Path   `yaml:"file"`
	Function string `yaml:"function"`
}

// String renders the pytest-style node id "path::function".
func (t UnmarkedTest) String() string {
	return fmt.Sprintf("%s::%s", t.File, t.Function)
}

// FileResult holds the analysis outcome for a single source file.
// Unmarked preserves the order of appearance within the file.
type FileResult struct {
	File      Path           `yaml:"file"`
	TestCount int            `yaml:"tests"`
	Unmarked  []UnmarkedTest `yaml:"unmarked,omitempty"`
}

// ScanSummary aggregates the results of one scan across all files, ordered
// lexicographically by file path.
type ScanSummary struct {
	Roots    []Path       `yaml:"roots"`
	Excluded []Marker     `yaml:"excluded_markers"`
	Files    []FileResult `yaml:"files"`
}

// UnmarkedTests flattens the per-file findings in report order
// (files lexicographic, functions in order of appearance).
func (s *ScanSummary) UnmarkedTests() []UnmarkedTest {
	var tests []UnmarkedTest
	for _, file := range s.Files {
		tests = append(tests, file.Unmarked...)
	}

	return tests
}

// TotalTests returns the number of test functions seen across all files.
func (s *ScanSummary) TotalTests() int {
	total := 0
	for _, file := range s.Files {
		total += file.TestCount
	}

	return total
}
