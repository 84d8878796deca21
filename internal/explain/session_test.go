package explain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"explain/internal/topics"
)

// fakeGenerator returns a canned response and records the prompt it saw.
type fakeGenerator struct {
	response   string
	lastPrompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.response, nil
}

func (g *fakeGenerator) Name() string { return "fake" }

// fakeGit serves a fixed diff and log.
type fakeGit struct {
	diff string
	log  string
}

func (g *fakeGit) Diff(_ context.Context, _, _ string) (string, error) { return g.diff, nil }

func (g *fakeGit) Log(_ context.Context, _, _ string, _ int) string { return g.log }

func newTestSession(t *testing.T, gen *fakeGenerator) (*Session, string, string) {
	t.Helper()
	repoRoot := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "explanations")

	return &Session{
		Generator: gen,
		Store:     topics.NewStore(outputDir),
		Git:       &fakeGit{},
		OutputDir: outputDir,
		RepoRoot:  repoRoot,
		Stdout:    &bytes.Buffer{},
		Stderr:    &bytes.Buffer{},
	}, repoRoot, outputDir
}

func TestExplainFileSavesOutput(t *testing.T) {
	gen := &fakeGenerator{response: "# Overview\n\nThe module parses things.\n"}
	sess, repoRoot, outputDir := newTestSession(t, gen)

	filePath := filepath.Join(repoRoot, "src", "app.py")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filePath, []byte("import os\n\ndef main():\n    pass\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := sess.ExplainFile(context.Background(), filePath); err != nil {
		t.Fatalf("ExplainFile: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "src-app.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != gen.response {
		t.Errorf("output = %q, want the generator response", data)
	}

	if !strings.Contains(gen.lastPrompt, "src/app.py") {
		t.Error("prompt does not mention the file path")
	}
	if !strings.Contains(gen.lastPrompt, "import os") {
		t.Error("prompt does not include the file content")
	}

	out := sess.Stdout.(*bytes.Buffer).String()
	if !strings.Contains(out, "The module parses things.") {
		t.Error("stdout does not include the explanation")
	}
}

func TestExplainFileUnreadable(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	sess, repoRoot, _ := newTestSession(t, gen)

	err := sess.ExplainFile(context.Background(), filepath.Join(repoRoot, "missing.py"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "cannot read file") {
		t.Errorf("error = %v, want cannot read file", err)
	}
}

func TestExplainFileEnqueuesTopics(t *testing.T) {
	response := strings.Join([]string{
		"# Explanation",
		"",
		"Body text.",
		"",
		"## Topics to explore",
		"",
		"- [file] `src/util.py` — Helper functions",
		"- [function] `src/app.py:main` — Entry point",
		"",
	}, "\n")
	gen := &fakeGenerator{response: response}
	sess, repoRoot, _ := newTestSession(t, gen)

	filePath := filepath.Join(repoRoot, "app.py")
	if err := os.WriteFile(filePath, []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := sess.ExplainFile(context.Background(), filePath); err != nil {
		t.Fatalf("ExplainFile: %v", err)
	}

	pending, err := sess.Store.PendingCount()
	if err != nil {
		t.Fatalf("PendingCount: %v", err)
	}
	if pending != 2 {
		t.Errorf("pending = %d, want 2", pending)
	}

	errOut := sess.Stderr.(*bytes.Buffer).String()
	if !strings.Contains(errOut, "Queued 2 new topic(s) (2 pending)") {
		t.Errorf("stderr missing queue message, got:\n%s", errOut)
	}
}

func TestExplainFunctionSymbolNotFound(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	sess, repoRoot, _ := newTestSession(t, gen)

	filePath := filepath.Join(repoRoot, "app.py")
	if err := os.WriteFile(filePath, []byte("def other():\n    pass\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := sess.ExplainFunction(context.Background(), filePath, "main")
	if err == nil {
		t.Fatal("expected error for missing symbol")
	}
	if !strings.Contains(err.Error(), "main") {
		t.Errorf("error = %v, want mention of symbol", err)
	}
}

func TestExplainFunctionOutputName(t *testing.T) {
	gen := &fakeGenerator{response: "Summary.\n"}
	sess, repoRoot, outputDir := newTestSession(t, gen)

	filePath := filepath.Join(repoRoot, "src", "auth.py")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatal(err)
	}
	content := "def login(user):\n    return user\n"
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := sess.ExplainFunction(context.Background(), filePath, "login"); err != nil {
		t.Fatalf("ExplainFunction: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "src-auth-login.md")); err != nil {
		t.Errorf("expected src-auth-login.md output: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "def login(user):") {
		t.Error("prompt does not include the extracted symbol source")
	}
}

func TestExplainRepo(t *testing.T) {
	gen := &fakeGenerator{response: "Architecture overview.\n"}
	sess, repoRoot, outputDir := newTestSession(t, gen)

	pyproject := "[project]\nname = \"demo\"\n\n[project.scripts]\ndemo = \"demo.cli:main\"\n"
	if err := os.WriteFile(filepath.Join(repoRoot, "pyproject.toml"), []byte(pyproject), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repoRoot, "README.md"), []byte("# Demo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := sess.ExplainRepo(context.Background(), repoRoot); err != nil {
		t.Fatalf("ExplainRepo: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "repo-overview.md")); err != nil {
		t.Errorf("expected repo-overview.md output: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "# Demo") {
		t.Error("prompt does not include the README")
	}
	if !strings.Contains(gen.lastPrompt, "demo = \"demo.cli:main\"") {
		t.Error("prompt does not include the script entry point")
	}

	errOut := sess.Stderr.(*bytes.Buffer).String()
	if !strings.Contains(errOut, "Found config: pyproject.toml") {
		t.Error("stderr missing config discovery message")
	}
}

func TestExplainDiff(t *testing.T) {
	diff := strings.Join([]string{
		"diff --git a/src/app.py b/src/app.py",
		"--- a/src/app.py",
		"+++ b/src/app.py",
		"@@ -1 +1,2 @@",
		" x = 1",
		"+y = 2",
		"",
	}, "\n")
	gen := &fakeGenerator{response: "Change summary.\n"}
	sess, _, outputDir := newTestSession(t, gen)
	sess.Git = &fakeGit{diff: diff, log: "abc123 add y"}

	if err := sess.ExplainDiff(context.Background(), "feature/login", "main"); err != nil {
		t.Fatalf("ExplainDiff: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "diff-feature-login.md")); err != nil {
		t.Errorf("expected diff-feature-login.md output: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "+y = 2") {
		t.Error("prompt does not include the diff")
	}
	if !strings.Contains(gen.lastPrompt, "abc123 add y") {
		t.Error("prompt does not include the commit log")
	}
}

func TestExplainDiffEmpty(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	sess, _, _ := newTestSession(t, gen)
	sess.Git = &fakeGit{diff: "\n"}

	if err := sess.ExplainDiff(context.Background(), "", ""); err != nil {
		t.Fatalf("ExplainDiff: %v", err)
	}

	errOut := sess.Stderr.(*bytes.Buffer).String()
	if !strings.Contains(errOut, "No changes to explain.") {
		t.Error("stderr missing no-changes message")
	}
	if gen.lastPrompt != "" {
		t.Error("generator should not run on an empty diff")
	}
}

func TestNextEmptyQueue(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	sess, _, _ := newTestSession(t, gen)

	ran, err := sess.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ran {
		t.Error("Next reported a run with an empty queue")
	}
}

func TestNextDispatchesFileTopic(t *testing.T) {
	gen := &fakeGenerator{response: "File explanation.\n"}
	sess, repoRoot, outputDir := newTestSession(t, gen)

	if err := os.WriteFile(filepath.Join(repoRoot, "util.py"), []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := sess.Store.Add([]topics.Topic{
		topics.New("Utility helpers", topics.KindFile, "util.py", "repo-overview"),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	ran, err := sess.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ran {
		t.Fatal("Next did not run a topic")
	}

	if _, err := os.Stat(filepath.Join(outputDir, "util.md")); err != nil {
		t.Errorf("expected util.md output: %v", err)
	}

	errOut := sess.Stderr.(*bytes.Buffer).String()
	if !strings.Contains(errOut, "No more topics. Exploration complete.") {
		t.Error("stderr missing completion message")
	}
}

func TestNextMissingFileTopicDropped(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	sess, _, _ := newTestSession(t, gen)

	_, err := sess.Store.Add([]topics.Topic{
		topics.New("Gone", topics.KindFile, "nope.py", ""),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	ran, err := sess.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ran {
		t.Fatal("Next should consume the topic")
	}
	if gen.lastPrompt != "" {
		t.Error("generator should not run for a missing file")
	}

	errOut := sess.Stderr.(*bytes.Buffer).String()
	if !strings.Contains(errOut, "File not found: nope.py (skipping)") {
		t.Errorf("stderr missing skip message, got:\n%s", errOut)
	}

	// The topic is consumed, not retried.
	pending, err := sess.Store.PendingCount()
	if err != nil {
		t.Fatal(err)
	}
	if pending != 0 {
		t.Errorf("pending = %d, want 0", pending)
	}
}

func TestNextGeneralTopic(t *testing.T) {
	gen := &fakeGenerator{response: "Conceptual answer.\n"}
	sess, _, outputDir := newTestSession(t, gen)

	_, err := sess.Store.Add([]topics.Topic{
		topics.New("How does auth work", topics.KindGeneral, "auth-flow", "repo-overview"),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	ran, err := sess.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ran {
		t.Fatal("Next did not run the topic")
	}

	if _, err := os.Stat(filepath.Join(outputDir, "topic-auth-flow.md")); err != nil {
		t.Errorf("expected topic-auth-flow.md output: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "How does auth work") {
		t.Error("prompt does not include the topic title")
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"src/auth/client.py", "src-auth-client"},
		{"main.py", "main"},
		{"src\\win\\path.py", "src-win-path"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := SanitizePath(tt.in); got != tt.want {
			t.Errorf("SanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
