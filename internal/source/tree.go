package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// treeExcludes is the immutable filter applied while building trees.
type treeExcludes struct {
	// names excludes any entry by exact name match.
	names map[string]bool
	// dirSuffixes excludes directories whose name ends with a suffix.
	dirSuffixes []string
	// fileSuffixes excludes files by extension.
	fileSuffixes map[string]bool
}

// defaultExcludes filters the usual build, VCS, and cache noise.
var defaultExcludes = treeExcludes{
	names: map[string]bool{
		".git": true, ".hg": true, ".svn": true,
		"node_modules": true, "__pycache__": true,
		".tox": true, ".venv": true, "venv": true,
		".env": true, "env": true, ".eggs": true,
		"dist": true, "build": true,
		".mypy_cache": true, ".pytest_cache": true, ".ruff_cache": true,
		"htmlcov": true, ".coverage": true,
	},
	dirSuffixes:  []string{".egg-info"},
	fileSuffixes: map[string]bool{".pyc": true, ".pyo": true, ".so": true, ".o": true, ".a": true, ".dylib": true},
}

// BuildTree renders a filtered directory tree rooted at root, descending at
// most maxDepth levels (the root is depth 0, its children depth 1).
// Directories at the cutoff depth are listed but not expanded. Directories
// that cannot be read terminate only their own subtree.
func BuildTree(root string, maxDepth int) string {
	var b strings.Builder
	b.WriteString(filepath.Base(root) + "/")
	walkTree(&b, root, "", 1, maxDepth, defaultExcludes)
	return b.String()
}

func walkTree(b *strings.Builder, dir, prefix string, depth, maxDepth int, excludes treeExcludes) {
	if depth > maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Permission errors end this subtree, not the whole walk.
		return
	}

	var filtered []os.DirEntry
	for _, entry := range entries {
		if excludes.skip(entry) {
			continue
		}
		filtered = append(filtered, entry)
	}

	// Subdirectories before files, alphabetical within each group.
	sort.SliceStable(filtered, func(i, j int) bool {
		di, dj := filtered[i].IsDir(), filtered[j].IsDir()
		if di != dj {
			return di
		}
		return filtered[i].Name() < filtered[j].Name()
	})

	for i, entry := range filtered {
		last := i == len(filtered)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		b.WriteString("\n" + prefix + connector + entry.Name())

		if entry.IsDir() {
			extension := "│   "
			if last {
				extension = "    "
			}
			walkTree(b, filepath.Join(dir, entry.Name()), prefix+extension, depth+1, maxDepth, excludes)
		}
	}
}

// skip reports whether the entry is excluded from the tree. Excluded entries
// produce no output and are not descended into. Dot-prefixed excluded names
// are skipped whatever they are; other excluded names only when they are
// directories, so a regular file called env or build still shows up.
func (e treeExcludes) skip(entry os.DirEntry) bool {
	name := entry.Name()
	if e.names[name] && (strings.HasPrefix(name, ".") || entry.IsDir()) {
		return true
	}
	if entry.IsDir() {
		for _, suffix := range e.dirSuffixes {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		}
		return false
	}
	return e.fileSuffixes[filepath.Ext(name)]
}
