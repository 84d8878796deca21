package source

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindRelatedTests locates test files related to a source file. A test file
// matches when its name contains the source file's stem, or, if symbol is
// non-empty, when its content references the symbol. Both the test_*.py and
// *_test.py naming conventions are considered. Returned paths are relative
// to the repository root.
func FindRelatedTests(filePath, repoRoot, symbol string) []string {
	sourceStem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	var related []string
	seen := map[string]bool{}
	add := func(path string) {
		rel, err := filepath.Rel(repoRoot, path)
		if err != nil {
			return
		}
		slashed := filepath.ToSlash(rel)
		if !seen[slashed] {
			seen[slashed] = true
			related = append(related, slashed)
		}
	}

	filepath.WalkDir(repoRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		base := d.Name()

		switch {
		case strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py"):
			if strings.Contains(base, sourceStem) {
				add(path)
				return nil
			}
			if symbol != "" {
				if content, ok := ReadFile(path); ok && strings.Contains(content, symbol) {
					add(path)
				}
			}
		case strings.HasSuffix(base, "_test.py"):
			if strings.Contains(base, sourceStem) {
				add(path)
			}
		}
		return nil
	})

	return related
}
