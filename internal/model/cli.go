package model

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"explain/internal/exec"
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 5 * time.Minute

// cliCommands maps model names to their CLI invocation. Extend this map to
// add new models. gemini needs an empty string after -p to read the prompt
// from stdin.
var cliCommands = map[string][]string{
	"claude": {"claude", "-p"},
	"gemini": {"gemini", "-p", ""},
}

// Supported reports whether name is a known model CLI.
func Supported(name string) bool {
	_, ok := cliCommands[name]
	return ok
}

// SupportedModels returns the known model names, sorted.
func SupportedModels() []string {
	names := make([]string, 0, len(cliCommands))
	for name := range cliCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CLIGenerator invokes a model's CLI, piping the prompt through stdin.
type CLIGenerator struct {
	model   string
	timeout time.Duration
	runner  exec.CommandRunner
}

// NewCLIGenerator creates a generator for the named model CLI. A zero
// timeout uses DefaultTimeout.
func NewCLIGenerator(model string, timeout time.Duration, runner exec.CommandRunner) (*CLIGenerator, error) {
	if !Supported(model) {
		return nil, fmt.Errorf("unknown model: %s (available: %s)", model, strings.Join(SupportedModels(), ", "))
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if runner == nil {
		runner = exec.NewRunner()
	}
	return &CLIGenerator{model: model, timeout: timeout, runner: runner}, nil
}

// Name returns the model name.
func (g *CLIGenerator) Name() string {
	return g.model
}

// Available reports whether the model's CLI binary is in PATH.
func (g *CLIGenerator) Available() bool {
	return g.runner.LookPath(cliCommands[g.model][0])
}

// Generate runs the model CLI with the prompt on stdin and returns its
// stdout. The CLAUDECODE environment variable is removed so a nested claude
// invocation is allowed.
func (g *CLIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := cliCommands[g.model]
	out, err := g.runner.RunInput(ctx, "", prompt, filteredEnv(), cmd[0], cmd[1:]...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("model %s timed out after %s", g.model, g.timeout)
		}
		return "", fmt.Errorf("model %s failed: %w", g.model, err)
	}
	return string(out), nil
}

// filteredEnv returns the process environment without CLAUDECODE.
func filteredEnv() []string {
	env := os.Environ()
	filtered := env[:0]
	for _, kv := range env {
		if strings.HasPrefix(kv, "CLAUDECODE=") {
			continue
		}
		filtered = append(filtered, kv)
	}
	return filtered
}

// Verify CLIGenerator implements Generator at compile time.
var _ Generator = (*CLIGenerator)(nil)
