package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildTree_ExcludesAndOrdering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"))
	writeFile(t, filepath.Join(root, "src", "app.py"))
	writeFile(t, filepath.Join(root, "README.md"))

	tree := BuildTree(root, 2)

	if strings.Contains(tree, ".git") {
		t.Errorf(".git should be excluded:\n%s", tree)
	}
	srcIdx := strings.Index(tree, "src")
	readmeIdx := strings.Index(tree, "README.md")
	if srcIdx < 0 || readmeIdx < 0 {
		t.Fatalf("missing entries:\n%s", tree)
	}
	if srcIdx > readmeIdx {
		t.Errorf("directories should be listed before files:\n%s", tree)
	}
	if !strings.Contains(tree, "app.py") {
		t.Errorf("src should be expanded at depth 2:\n%s", tree)
	}
}

func TestBuildTree_RootLine(t *testing.T) {
	root := t.TempDir()
	tree := BuildTree(root, 1)
	want := filepath.Base(root) + "/"
	if tree != want {
		t.Errorf("empty tree = %q, want %q", tree, want)
	}
}

func TestBuildTree_DepthCutoff(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "deep.py"))

	tree := BuildTree(root, 1)
	if !strings.Contains(tree, "a") {
		t.Fatalf("depth-1 directory missing:\n%s", tree)
	}
	// The cutoff-depth directory is listed but not expanded.
	if strings.Contains(tree, "b") {
		t.Errorf("depth-2 entries should not appear with maxDepth 1:\n%s", tree)
	}
}

func TestBuildTree_FileSuffixExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mod.py"))
	writeFile(t, filepath.Join(root, "mod.pyc"))
	writeFile(t, filepath.Join(root, "lib.so"))

	tree := BuildTree(root, 1)
	if !strings.Contains(tree, "mod.py") {
		t.Errorf("mod.py missing:\n%s", tree)
	}
	if strings.Contains(tree, "mod.pyc") || strings.Contains(tree, "lib.so") {
		t.Errorf("compiled artifacts should be excluded:\n%s", tree)
	}
}

func TestBuildTree_EggInfoDirExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg.egg-info", "PKG-INFO"))
	writeFile(t, filepath.Join(root, "pkg", "__init__.py"))

	tree := BuildTree(root, 2)
	if strings.Contains(tree, "egg-info") {
		t.Errorf("egg-info directories should be excluded:\n%s", tree)
	}
	if !strings.Contains(tree, "__init__.py") {
		t.Errorf("pkg should be listed:\n%s", tree)
	}
}

func TestBuildTree_NameExclusionsAreDirectoryOnly(t *testing.T) {
	root := t.TempDir()
	// Files that happen to share a name with excluded directories stay
	// visible; only the directories themselves are filtered.
	writeFile(t, filepath.Join(root, "env"))
	writeFile(t, filepath.Join(root, "dist"))
	writeFile(t, filepath.Join(root, "build", "out.txt"))
	writeFile(t, filepath.Join(root, "venv", "bin", "python"))
	writeFile(t, filepath.Join(root, ".coverage"))

	tree := BuildTree(root, 2)

	if !strings.Contains(tree, "env") {
		t.Errorf("regular file env should be listed:\n%s", tree)
	}
	if !strings.Contains(tree, "dist") {
		t.Errorf("regular file dist should be listed:\n%s", tree)
	}
	if strings.Contains(tree, "build") || strings.Contains(tree, "out.txt") {
		t.Errorf("build directory should be excluded:\n%s", tree)
	}
	if strings.Contains(tree, "venv") {
		t.Errorf("venv directory should be excluded:\n%s", tree)
	}
	// Dot-prefixed excluded names are filtered even as files.
	if strings.Contains(tree, ".coverage") {
		t.Errorf(".coverage file should be excluded:\n%s", tree)
	}
}

func TestBuildTree_Connectors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "child.py"))
	writeFile(t, filepath.Join(root, "one.py"))
	writeFile(t, filepath.Join(root, "two.py"))

	tree := BuildTree(root, 2)
	lines := strings.Split(tree, "\n")
	want := []string{
		filepath.Base(root) + "/",
		"\u251c\u2500\u2500 sub",
		"\u2502   \u2514\u2500\u2500 child.py",
		"\u251c\u2500\u2500 one.py",
		"\u2514\u2500\u2500 two.py",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), tree)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}
