// Package exec provides an interface for running external commands.
package exec

import (
	"context"
)

// CommandRunner defines the interface for running external commands.
// This abstraction allows mocking command execution in tests.
type CommandRunner interface {
	// Run executes a command and returns combined stdout/stderr output.
	// The working directory is set to workDir if non-empty.
	Run(ctx context.Context, workDir string, name string, args ...string) (output []byte, err error)

	// RunInput executes a command with stdin fed from input and an
	// explicit environment (nil inherits the process environment).
	// It returns stdout only; stderr is folded into the error.
	RunInput(ctx context.Context, workDir string, input string, env []string, name string, args ...string) (output []byte, err error)

	// LookPath reports whether an executable with the given name is
	// available in PATH.
	LookPath(name string) bool
}
