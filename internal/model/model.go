// Package model invokes the text-generation backends that produce
// explanations. Two backends exist: a model CLI subprocess (claude, gemini)
// and the Anthropic API, optionally routed through AWS Bedrock.
package model

import (
	"context"
)

// Generator produces an explanation for a fully assembled prompt.
type Generator interface {
	// Generate sends the prompt and returns the response text. The call
	// blocks until the backend finishes or ctx is done.
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the backend for status output.
	Name() string
}
