package source

import (
	"os"
	"unicode/utf8"
)

// ReadFile returns the text content of path. Missing files and files that
// are not valid UTF-8 report ok=false rather than an error: both are
// expected when targets come from generated text.
func ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}
