package explain

import (
	"os"
	"path/filepath"
	"strings"

	"explain/internal/source"
)

// configFileNames lists project config files in probe order.
var configFileNames = []string{
	"pyproject.toml",
	"package.json",
	"Cargo.toml",
	"go.mod",
	"pom.xml",
	"build.gradle",
	"Makefile",
}

// readmeNames lists README fallbacks tried after README.md.
var readmeNames = []string{"README.md", "README.rst", "README.txt", "README"}

// entryPointCandidates lists conventional entry point locations.
var entryPointCandidates = []string{
	"src/main.py",
	"main.py",
	"app.py",
	"src/app.py",
	"manage.py",
	"setup.py",
	"cli.py",
}

// FindProjectConfig locates and reads the first recognized project config
// file under repoRoot. It returns the file name and content, or empty
// strings when none is found.
func FindProjectConfig(repoRoot string) (string, string) {
	for _, name := range configFileNames {
		content, ok := source.ReadFile(filepath.Join(repoRoot, name))
		if ok {
			return name, content
		}
	}
	return "", ""
}

// FindReadme reads the repository README, trying common variants.
func FindReadme(repoRoot string) string {
	for _, name := range readmeNames {
		content, ok := source.ReadFile(filepath.Join(repoRoot, name))
		if ok {
			return content
		}
	}
	return ""
}

// FindEntryPoints identifies likely entry points from convention and from
// the [project.scripts] table of a pyproject.toml config.
func FindEntryPoints(repoRoot, configContent string) []string {
	var entryPoints []string

	for _, candidate := range entryPointCandidates {
		info, err := os.Stat(filepath.Join(repoRoot, candidate))
		if err == nil && info.Mode().IsRegular() {
			entryPoints = append(entryPoints, candidate)
		}
	}

	if strings.Contains(configContent, "[project.scripts]") {
		inScripts := false
		for _, line := range strings.Split(configContent, "\n") {
			if strings.Contains(line, "[project.scripts]") {
				inScripts = true
				continue
			}
			if inScripts {
				if strings.HasPrefix(line, "[") {
					break
				}
				if strings.Contains(line, "=") {
					entryPoints = append(entryPoints, strings.TrimSpace(line))
				}
			}
		}
	}

	return entryPoints
}
