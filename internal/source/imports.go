package source

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// ImportInfo describes a Python file's import relationships.
type ImportInfo struct {
	// Imports lists the import statements found in the file.
	Imports []string
	// ImportedBy lists repo-relative paths of files importing this one.
	ImportedBy []string
}

// AnalyzeImports collects the import statements of a Python file and scans
// the repository for files that import it. An unreadable file yields empty
// results.
func AnalyzeImports(filePath, repoRoot string) ImportInfo {
	content, ok := ReadFile(filePath)
	if !ok {
		return ImportInfo{}
	}

	var imports []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "from ") {
			imports = append(imports, line)
		}
	}

	moduleName := modulePath(filePath, repoRoot)
	simpleName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	var importedBy []string
	filepath.WalkDir(repoRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".py") || path == filePath {
			return nil
		}
		text, ok := ReadFile(path)
		if !ok {
			return nil
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "import ") && !strings.HasPrefix(line, "from ") {
				continue
			}
			if (moduleName != "" && strings.Contains(line, moduleName)) || strings.Contains(line, simpleName) {
				if rel, err := filepath.Rel(repoRoot, path); err == nil {
					importedBy = append(importedBy, filepath.ToSlash(rel))
				}
				break
			}
		}
		return nil
	})

	return ImportInfo{Imports: imports, ImportedBy: importedBy}
}

// modulePath converts a file path into its dotted module name relative to
// the repository root, e.g. src/auth/client.py becomes src.auth.client.
func modulePath(filePath, repoRoot string) string {
	rel, err := filepath.Rel(repoRoot, filePath)
	if err != nil {
		return ""
	}
	name := filepath.ToSlash(rel)
	name = strings.TrimSuffix(name, ".py")
	name = strings.TrimSuffix(name, "/__init__")
	return strings.ReplaceAll(name, "/", ".")
}
