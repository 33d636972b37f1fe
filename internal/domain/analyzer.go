package domain

import (
	"regexp"
	"strings"

	m "markhound.dev/pkg/markhound/internal/model"
)

var (
	// testFuncPattern matches a test function definition: optional leading
	// whitespace, "def", a name starting with "test_", then the parameter
	// list opening. Whitespace before the parenthesis is tolerated.
	testFuncPattern = regexp.MustCompile(`^(\s*)def\s+(test_\w+)\s*\(`)

	// classPattern matches a class definition header.
	classPattern = regexp.MustCompile(`^(\s*)class\s+(\w+)`)
)

// Analyzer classifies the lines of a Python source file and decides which
// test functions carry none of the excluded markers.
//
// It is a deliberately lightweight line-based classifier, not a parser:
// definitions are recognized by regular expressions, decorator blocks by a
// backward scan with delimiter-depth tracking, and class scope by
// indentation comparison. Pathological mixed-indentation files are outside
// its correctness envelope.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze returns the names of all test functions in content whose effective
// marker set (own decorators unioned with any enclosing class's decorators)
// does not intersect excluded. Names appear in source order. The function is
// pure and total: it never fails, and malformed text simply yields fewer or
// no matches.
func (a *Analyzer) Analyze(content string, excluded m.MarkerSet) []string {
	_, unmarked := a.Report(content, excluded)
	return unmarked
}

// Report is Analyze plus the total number of test functions seen, for
// per-file statistics.
func (a *Analyzer) Report(content string, excluded m.MarkerSet) (total int, unmarked []string) {
	lines := splitLines(content)
	tracker := &scopeTracker{}

	for i, line := range lines {
		if groups := classPattern.FindStringSubmatch(line); groups != nil {
			indent := len(groups[1])
			tracker.enterClass(indent, scanDecorators(lines, i))

			// A line cannot be both a class header and a test function.
			continue
		}

		groups := testFuncPattern.FindStringSubmatch(line)
		if groups == nil {
			continue
		}

		total++

		indent := len(groups[1])
		name := groups[2]

		if tracker.marked(indent, excluded) {
			continue
		}

		if scanDecorators(lines, i).Intersects(excluded) {
			continue
		}

		unmarked = append(unmarked, name)
	}

	return total, unmarked
}

// splitLines splits content on newlines the way Python sees source lines.
// A trailing newline does not produce an extra empty line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
