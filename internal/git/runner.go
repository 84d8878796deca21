// Package git wraps the git subprocess operations used to gather change
// context for diff explanations. Output is passed through verbatim.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// diffContextLines is the unified-diff context passed to git diff.
const diffContextLines = 10

// Runner defines the git operations the explanation pipeline consumes.
type Runner interface {
	// Diff returns the unified diff for ref against base. An empty ref
	// means the staged changes; an empty base is resolved to origin/main
	// when that ref exists, main otherwise.
	Diff(ctx context.Context, ref, base string) (string, error)
	// Log returns the oneline commit log for ref (against base when both
	// are set), capped at maxCount entries. Failures yield an empty log,
	// not an error: the log is optional context.
	Log(ctx context.Context, ref, base string, maxCount int) string
}

// ExecRunner implements Runner using the git CLI.
type ExecRunner struct {
	repoPath string
}

// NewRunner creates a git runner for the repository at the given path.
func NewRunner(repoPath string) *ExecRunner {
	return &ExecRunner{repoPath: repoPath}
}

// run executes a git command and returns its stdout.
func (r *ExecRunner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.repoPath
	out, err := cmd.Output()
	if err != nil {
		detail := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			detail = ": " + strings.TrimSpace(string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git %s: %w%s", strings.Join(args, " "), err, detail)
	}
	return string(out), nil
}

// Diff returns the unified diff for ref against base.
func (r *ExecRunner) Diff(ctx context.Context, ref, base string) (string, error) {
	contextArg := fmt.Sprintf("-U%d", diffContextLines)

	if ref == "" {
		return r.run(ctx, "diff", "--staged", contextArg)
	}

	if base == "" {
		base = r.defaultBase(ctx)
	}
	return r.run(ctx, "diff", contextArg, base+"..."+ref)
}

// defaultBase resolves the diff base: origin/main when present, main
// otherwise.
func (r *ExecRunner) defaultBase(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--verify", "origin/main")
	cmd.Dir = r.repoPath
	if cmd.Run() == nil {
		return "origin/main"
	}
	return "main"
}

// Log returns the oneline commit log, empty on any failure.
func (r *ExecRunner) Log(ctx context.Context, ref, base string, maxCount int) string {
	args := []string{"log", "--oneline", fmt.Sprintf("--max-count=%d", maxCount)}
	switch {
	case ref != "" && base != "":
		args = append(args, base+"..."+ref)
	case ref != "":
		args = append(args, ref)
	}

	out, err := r.run(ctx, args...)
	if err != nil {
		return ""
	}
	return out
}

// ChangedFiles extracts the changed file paths from a unified diff by
// scanning its "+++ b/" headers. Deleted files (/dev/null) are omitted.
func ChangedFiles(diff string) []string {
	var files []string
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "+++ b/") {
			continue
		}
		path := line[len("+++ b/"):]
		if path != "/dev/null" {
			files = append(files, path)
		}
	}
	return files
}

// Verify ExecRunner implements Runner at compile time.
var _ Runner = (*ExecRunner)(nil)
