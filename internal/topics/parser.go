package topics

import (
	"strings"
)

// Model responses are expected to surface follow-up topics in a section of
// this shape:
//
//	## Topics to Explore
//
//	- [file] `src/workflow/executor.py` — How the plan executor dispatches tasks
//	- [function] `src/router.py:route_request` — The routing logic
//	- [general] `dataverse-integration` — How agents read the data marts
//
// Parsing is deliberately line oriented: generated text is unreliable, so a
// malformed bullet skips just that line and a missing section yields nothing.

// ParseResponse extracts follow-up topics from a model response. Topics are
// returned in the order they appear, each stamped with the given source
// label. Deduplication is the store's responsibility at add time.
func ParseResponse(response, source string) []Topic {
	lines := strings.Split(response, "\n")

	// Locate the topics heading and remember its markup level so the
	// section can be terminated at the next equal-or-higher heading.
	sectionLevel := 0
	sectionStart := -1
	for i, line := range lines {
		level, title := splitHeading(line)
		if level == 0 {
			continue
		}
		if isTopicsHeading(title) {
			sectionLevel = level
			sectionStart = i + 1
			break
		}
	}
	if sectionStart < 0 {
		return nil
	}

	var out []Topic
	for _, line := range lines[sectionStart:] {
		if level, _ := splitHeading(line); level > 0 && level <= sectionLevel {
			break
		}
		topic, ok := parseTopicLine(line)
		if !ok {
			continue
		}
		topic.Source = source
		out = append(out, topic)
	}
	return out
}

// splitHeading returns the markdown heading level (number of leading '#')
// and the heading text. A level of 0 means the line is not a heading.
func splitHeading(line string) (int, string) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 {
		return 0, ""
	}
	return level, strings.TrimSpace(line[level:])
}

// isTopicsHeading matches "Topics to Explore" case-insensitively, singular
// or plural, with any internal whitespace.
func isTopicsHeading(title string) bool {
	normalized := strings.Join(strings.Fields(strings.ToLower(title)), " ")
	return normalized == "topics to explore" || normalized == "topic to explore"
}

// parseTopicLine matches one bullet of the exact shape
//
//   - [kind] `target` — description
//
// where the separator may be an em-dash, a hyphen, or a colon. Lines missing
// the bracketed kind, the backticked target, or the description do not match.
func parseTopicLine(line string) (Topic, bool) {
	if len(line) == 0 || (line[0] != '-' && line[0] != '*') {
		return Topic{}, false
	}
	rest, ok := eatSpace(line[1:])
	if !ok {
		return Topic{}, false
	}

	// [kind]
	if !strings.HasPrefix(rest, "[") {
		return Topic{}, false
	}
	closing := strings.IndexByte(rest, ']')
	if closing < 0 {
		return Topic{}, false
	}
	kind := rest[1:closing]
	if !isWord(kind) {
		return Topic{}, false
	}
	rest, ok = eatSpace(rest[closing+1:])
	if !ok {
		return Topic{}, false
	}

	// `target`
	if !strings.HasPrefix(rest, "`") {
		return Topic{}, false
	}
	end := strings.IndexByte(rest[1:], '`')
	if end < 0 {
		return Topic{}, false
	}
	target := rest[1 : 1+end]
	if target == "" {
		return Topic{}, false
	}
	rest = strings.TrimLeft(rest[end+2:], " \t")

	// Separator, then description to end of line.
	switch {
	case strings.HasPrefix(rest, "—"):
		rest = rest[len("—"):]
	case strings.HasPrefix(rest, "-"):
		rest = rest[1:]
	case strings.HasPrefix(rest, ":"):
		rest = rest[1:]
	default:
		return Topic{}, false
	}
	title := strings.TrimSpace(rest)
	if title == "" {
		return Topic{}, false
	}

	kind = strings.ToLower(kind)
	if !KnownKind(kind) {
		// Unknown kinds are never rejected, they degrade to general.
		kind = KindGeneral
	}
	return New(title, kind, target, ""), true
}

// eatSpace consumes one or more spaces or tabs, failing when none present.
func eatSpace(s string) (string, bool) {
	trimmed := strings.TrimLeft(s, " \t")
	if len(trimmed) == len(s) {
		return s, false
	}
	return trimmed, true
}

// isWord reports whether s is non-empty and made of word characters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
