package domain

import (
	"strings"

	m "markhound.dev/pkg/markhound/internal/model"
)

// scanDecorators walks backward from lines[start-1] and collects every marker
// declared on the contiguous block of decorator lines above a definition.
//
// Three delimiter depth counters track parentheses, brackets, and braces so
// that a decorator call spanning multiple lines (an open argument list) is
// treated as a single unit rather than as the end of the block. The counters
// are a coarse heuristic: they are updated per line while walking backward,
// may go negative across an unbalanced span, and are never clamped.
//
// The scan stops at the start of the file or at the first non-decorator line
// seen while all three depths are zero.
func scanDecorators(lines []string, start int) m.MarkerSet {
	markers := make(m.MarkerSet)

	parenDepth := 0
	bracketDepth := 0
	braceDepth := 0

	for i := start - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}

		for _, ch := range trimmed {
			switch ch {
			case '(':
				parenDepth++
			case ')':
				parenDepth--
			case '[':
				bracketDepth++
			case ']':
				bracketDepth--
			case '{':
				braceDepth++
			case '}':
				braceDepth--
			}
		}

		if strings.HasPrefix(trimmed, "@") {
			if marker, ok := ExtractMarker(trimmed); ok {
				markers.Add(marker)
			}

			// A decorator may itself open a span that continues on the
			// lines above it, so the scan never stops on a sigil line.
			continue
		}

		if parenDepth == 0 && bracketDepth == 0 && braceDepth == 0 {
			// Ordinary code at balanced depth terminates the block.
			break
		}
		// Interior line of a multi-line decorator call, keep going.
	}

	return markers
}
