// Package skill holds the embedded agent skill file installed by the
// install-skill command.
package skill

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed SKILL.md
var content string

// Content returns the skill file content.
func Content() string {
	return content
}

// DefaultDir returns the default install directory under the current
// working directory.
func DefaultDir() string {
	return filepath.Join(".claude", "skills", "code-explainer")
}

// Install writes the skill file into targetDir, creating it as needed,
// and returns the path of the written file.
func Install(targetDir string) (string, error) {
	if targetDir == "" {
		targetDir = DefaultDir()
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("create skill directory: %w", err)
	}

	target := filepath.Join(targetDir, "SKILL.md")
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write skill file: %w", err)
	}
	return target, nil
}
