package main

import (
	"fmt"
	"os"
	"path/filepath"

	"explain/internal/config"
	"explain/internal/exec"
	"explain/internal/explain"
	"explain/internal/git"
	"explain/internal/history"
	"explain/internal/model"
	"explain/internal/topics"
)

// createGenerator builds the generation backend selected by config.
// The model name "api" selects the direct Anthropic API; everything else
// is treated as a model CLI on PATH.
func createGenerator(cfg *config.Config) (model.Generator, error) {
	if cfg.Model == "api" {
		return model.NewAPIGenerator(model.APIConfig{
			Model:      cfg.API.Model,
			APIKey:     cfg.API.APIKey,
			UseBedrock: cfg.API.UseBedrock,
			AWSRegion:  cfg.API.AWSRegion,
			AWSProfile: cfg.API.AWSProfile,
		})
	}

	gen, err := model.NewCLIGenerator(cfg.Model, cfg.Timeouts.Generate, exec.NewRunner())
	if err != nil {
		return nil, err
	}
	if !gen.Available() {
		return nil, fmt.Errorf("model %q CLI not available", cfg.Model)
	}
	return gen, nil
}

// createSession assembles a fully wired explanation session.
func createSession(cfg *config.Config) (*explain.Session, error) {
	gen, err := createGenerator(cfg)
	if err != nil {
		return nil, err
	}

	repoRoot, err := filepath.Abs(flagRepo)
	if err != nil {
		return nil, fmt.Errorf("resolve repo root: %w", err)
	}

	sess := &explain.Session{
		Generator: gen,
		Store:     topics.NewStore(cfg.OutputDir),
		Git:       git.NewRunner(repoRoot),
		OutputDir: cfg.OutputDir,
		RepoRoot:  repoRoot,
		TreeDepth: cfg.Tree.MaxDepth,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}

	// Run history is best effort: an unopenable database disables it.
	if db, err := history.Open(history.Path(cfg.OutputDir)); err == nil {
		sess.History = db
	}

	return sess, nil
}

// closeSession releases session resources.
func closeSession(sess *explain.Session) {
	if sess.History != nil {
		sess.History.Close()
	}
}
