// Package version exposes the release version embedded at build time.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Get returns the release version string, trimmed of surrounding whitespace.
func Get() string {
	return strings.TrimSpace(raw)
}
