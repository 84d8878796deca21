// Package source extracts structured fragments from source trees: single
// definitions isolated by indentation, filtered directory trees, import
// relationships, and related test files.
package source

import (
	"strings"
)

// definitionPrefixes returns the line prefixes that open a definition of
// symbol: a def or class keyword, optionally async, followed by the symbol
// and an opening parenthesis or colon, allowing one optional space before
// the parenthesis.
func definitionPrefixes(symbol string) []string {
	return []string{
		"def " + symbol + "(",
		"def " + symbol + " (",
		"class " + symbol + "(",
		"class " + symbol + ":",
		"class " + symbol + " (",
		"async def " + symbol + "(",
		"async def " + symbol + " (",
	}
}

// ExtractSymbol isolates the source span of a named function or class from
// fileText, using indentation rather than syntax. Returns false when the
// symbol is not found.
//
// The scan is a two-state machine. Searching: strip leading whitespace and
// test each line against the definition prefixes; on a match, record that
// line's indentation as the base and start capturing. Capturing: blank lines
// are kept, lines indented deeper than the base are kept, and a non-blank
// line at or below the base indentation ends the span unless it is a comment
// line, which is kept and capturing continues. This comment handling is
// intentionally asymmetric with the termination rule and must stay that way.
//
// The heuristic is lexical only. Bodies that mix tabs and spaces differently
// from the rest of the file can confuse it; that is an accepted limitation.
func ExtractSymbol(fileText, symbol string) (string, bool) {
	prefixes := definitionPrefixes(symbol)
	lines := strings.Split(fileText, "\n")

	var captured []string
	capturing := false
	baseIndent := 0

	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")

		if !capturing {
			for _, prefix := range prefixes {
				if strings.HasPrefix(stripped, prefix) {
					capturing = true
					baseIndent = len(line) - len(stripped)
					captured = append(captured, line)
					break
				}
			}
			continue
		}

		// Blank lines inside the body are preserved verbatim.
		if stripped == "" {
			captured = append(captured, line)
			continue
		}

		indent := len(line) - len(stripped)
		if indent <= baseIndent && !strings.HasPrefix(stripped, "#") {
			break
		}
		captured = append(captured, line)
	}

	if len(captured) == 0 {
		return "", false
	}

	// Trailing blank lines belong to whatever follows, not the definition.
	for len(captured) > 0 && strings.TrimSpace(captured[len(captured)-1]) == "" {
		captured = captured[:len(captured)-1]
	}

	return strings.Join(captured, "\n"), true
}
