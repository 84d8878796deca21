// Package explain orchestrates explanation sessions: it gathers context,
// builds prompts, runs the generation model, persists output, and feeds
// discovered topics back into the exploration queue.
package explain

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"explain/internal/git"
	"explain/internal/history"
	"explain/internal/model"
	"explain/internal/prompt"
	"explain/internal/source"
	"explain/internal/topics"
)

// contextTreeDepth bounds the directory tree included as context in file
// and function prompts. Repo overviews use the configured depth instead.
const contextTreeDepth = 2

// Session runs explanations against a repository.
type Session struct {
	Generator model.Generator
	Store     *topics.Store
	Git       git.Runner
	// History records completed runs; nil disables recording.
	History *history.DB

	OutputDir string
	RepoRoot  string
	// TreeDepth bounds repo overview trees.
	TreeDepth int

	// Stdout receives the explanation text, Stderr the progress messages.
	Stdout io.Writer
	Stderr io.Writer
}

// ExplainFile explains a file's purpose, structure, and key patterns.
func (s *Session) ExplainFile(ctx context.Context, filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, ok := source.ReadFile(absPath)
	if !ok {
		return fmt.Errorf("cannot read file: %s", filePath)
	}

	fmt.Fprintf(s.Stderr, "Explaining %s...\n", filePath)

	relPath := s.relPath(absPath)
	imports := source.AnalyzeImports(absPath, s.RepoRoot)
	tree := source.BuildTree(s.RepoRoot, contextTreeDepth)

	p := prompt.BuildFile(prompt.FileContext{
		Path:       relPath,
		Content:    content,
		Imports:    imports.Imports,
		ImportedBy: imports.ImportedBy,
		RepoTree:   tree,
	})

	return s.finish(ctx, p, runInfo{
		kind:       topics.KindFile,
		target:     relPath,
		source:     "file:" + relPath,
		outputName: SanitizePath(relPath) + ".md",
	})
}

// ExplainFunction explains a single function or class in a file.
func (s *Session) ExplainFunction(ctx context.Context, filePath, symbol string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	fileContent, ok := source.ReadFile(absPath)
	if !ok {
		return fmt.Errorf("cannot read file: %s", filePath)
	}

	symbolSource, found := source.ExtractSymbol(fileContent, symbol)
	if !found {
		return fmt.Errorf("symbol %q not found in %s", symbol, filePath)
	}

	fmt.Fprintf(s.Stderr, "Explaining %s from %s...\n", symbol, filePath)

	relPath := s.relPath(absPath)
	relatedTests := source.FindRelatedTests(absPath, s.RepoRoot, symbol)

	p := prompt.BuildFunction(prompt.FunctionContext{
		Path:         relPath,
		Symbol:       symbol,
		Source:       symbolSource,
		FileContent:  fileContent,
		RelatedTests: relatedTests,
	})

	return s.finish(ctx, p, runInfo{
		kind:       topics.KindFunction,
		target:     relPath + ":" + symbol,
		source:     "function:" + relPath + ":" + symbol,
		outputName: SanitizePath(relPath) + "-" + symbol + ".md",
	})
}

// ExplainRepo generates a high-level architecture overview of a repository
// rooted at repoPath.
func (s *Session) ExplainRepo(ctx context.Context, repoPath string) error {
	absRepo, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	fmt.Fprintf(s.Stderr, "Analyzing repository at %s...\n", absRepo)

	tree := source.BuildTree(absRepo, s.treeDepth())

	configName, configContent := FindProjectConfig(absRepo)
	if configName != "" {
		fmt.Fprintf(s.Stderr, "Found config: %s\n", configName)
	}

	readme := FindReadme(absRepo)
	entryPoints := FindEntryPoints(absRepo, configContent)

	p := prompt.BuildRepo(prompt.RepoContext{
		Tree:          tree,
		ConfigContent: configContent,
		ReadmeContent: readme,
		EntryPoints:   entryPoints,
	})

	return s.finish(ctx, p, runInfo{
		kind:       topics.KindRepo,
		target:     repoPath,
		source:     "repo-overview",
		outputName: "repo-overview.md",
	})
}

// ExplainDiff explains the changes on a branch against a base, or the
// staged changes when branch is empty.
func (s *Session) ExplainDiff(ctx context.Context, branch, base string) error {
	diff, err := s.Git.Diff(ctx, branch, base)
	if err != nil {
		return err
	}

	if strings.TrimSpace(diff) == "" {
		fmt.Fprintln(s.Stderr, "No changes to explain.")
		return nil
	}

	var commitLog string
	if branch != "" {
		commitLog = s.Git.Log(ctx, branch, base, 20)
	}
	changedFiles := git.ChangedFiles(diff)

	label := branch
	if label == "" {
		label = "staged"
	}
	fmt.Fprintf(s.Stderr, "Explaining %s changes (%d files)...\n", label, len(changedFiles))

	p := prompt.BuildDiff(prompt.DiffContext{
		Diff:         diff,
		CommitLog:    commitLog,
		ChangedFiles: changedFiles,
	})

	return s.finish(ctx, p, runInfo{
		kind:       topics.KindDiff,
		target:     label,
		source:     "diff:" + label,
		outputName: "diff-" + strings.ReplaceAll(label, "/", "-") + ".md",
	})
}

// ExplainGeneral explains a free-form question in the context of the
// repository.
func (s *Session) ExplainGeneral(ctx context.Context, topic topics.Topic) error {
	tree := source.BuildTree(s.RepoRoot, 3)
	_, configContent := FindProjectConfig(s.RepoRoot)

	p := prompt.BuildGeneral(prompt.GeneralContext{
		Question:      topic.Title,
		Tree:          tree,
		ConfigContent: configContent,
	})

	return s.finish(ctx, p, runInfo{
		kind:       topics.KindGeneral,
		target:     topic.Target,
		source:     "general:" + topic.Target,
		outputName: "topic-" + SanitizePath(topic.Target) + ".md",
	})
}

// Next pops the next pending topic and dispatches on its kind. Topics
// pointing at missing files or symbols are reported and dropped without
// failing the run. It returns false when no pending topic exists.
func (s *Session) Next(ctx context.Context) (bool, error) {
	topic, err := s.Store.PopNext()
	if err != nil {
		return false, err
	}
	if topic == nil {
		return false, nil
	}

	fmt.Fprintf(s.Stderr, "Next topic: [%s] %s\n", topic.Kind, topic.Target)
	fmt.Fprintf(s.Stderr, "  %s\n", topic.Title)
	if topic.Source != "" {
		fmt.Fprintf(s.Stderr, "  (surfaced by %s)\n", topic.Source)
	}
	fmt.Fprintln(s.Stderr)

	if err := s.runTopic(ctx, *topic); err != nil {
		return true, err
	}

	remaining, err := s.Store.PendingCount()
	if err != nil {
		return true, err
	}
	if remaining > 0 {
		fmt.Fprintf(s.Stderr, "\n%d topic(s) remaining. Run `explain next` to continue.\n", remaining)
	} else {
		fmt.Fprintln(s.Stderr, "\nNo more topics. Exploration complete.")
	}
	return true, nil
}

// runTopic dispatches a popped topic to the matching explanation.
func (s *Session) runTopic(ctx context.Context, topic topics.Topic) error {
	switch topic.Kind {
	case topics.KindFile:
		path := s.resolveTarget(topic.Target)
		if !isFile(path) {
			fmt.Fprintf(s.Stderr, "File not found: %s (skipping)\n", topic.Target)
			return nil
		}
		return s.ExplainFile(ctx, path)

	case topics.KindFunction:
		idx := strings.LastIndex(topic.Target, ":")
		if idx < 0 {
			fmt.Fprintf(s.Stderr, "Function topic target must be file:symbol, got: %s\n", topic.Target)
			return nil
		}
		path, symbol := s.resolveTarget(topic.Target[:idx]), topic.Target[idx+1:]
		if !isFile(path) {
			fmt.Fprintf(s.Stderr, "File not found: %s (skipping)\n", topic.Target[:idx])
			return nil
		}
		if _, found := source.ExtractSymbol(mustRead(path), symbol); !found {
			fmt.Fprintf(s.Stderr, "Symbol %q not found in %s (skipping)\n", symbol, topic.Target[:idx])
			return nil
		}
		return s.ExplainFunction(ctx, path, symbol)

	case topics.KindRepo:
		target := s.RepoRoot
		if topic.Target != "." {
			candidate := s.resolveTarget(topic.Target)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				target = candidate
			}
		}
		return s.ExplainRepo(ctx, target)

	case topics.KindDiff:
		return s.ExplainDiff(ctx, topic.Target, "")

	case topics.KindGeneral:
		return s.ExplainGeneral(ctx, topic)

	default:
		return fmt.Errorf("unknown topic kind: %s", topic.Kind)
	}
}

// runInfo carries the metadata finish needs to persist a run.
type runInfo struct {
	kind       string
	target     string
	source     string
	outputName string
}

// finish runs the generator, saves the output, enqueues discovered
// topics, records history, and echoes the result.
func (s *Session) finish(ctx context.Context, promptText string, info runInfo) error {
	fmt.Fprintf(s.Stderr, "Running %s...\n", s.Generator.Name())

	start := time.Now()
	result, err := s.Generator.Generate(ctx, promptText)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	outputPath := filepath.Join(s.OutputDir, info.outputName)
	if err := saveOutput(result, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(s.Stderr, "Saved to %s\n", outputPath)

	s.enqueueTopics(result, info.source)

	if s.History != nil {
		err := s.History.Record(history.Run{
			Kind:       info.kind,
			Target:     info.target,
			Model:      s.Generator.Name(),
			OutputPath: outputPath,
			Duration:   elapsed,
		})
		if err != nil {
			fmt.Fprintf(s.Stderr, "Warning: recording history: %v\n", err)
		}
	}

	fmt.Fprintln(s.Stdout, result)
	return nil
}

// enqueueTopics parses follow-up topics from a response and adds the new
// ones to the queue.
func (s *Session) enqueueTopics(response, sourceLabel string) {
	parsed := topics.ParseResponse(response, sourceLabel)
	if len(parsed) == 0 {
		return
	}
	added, err := s.Store.Add(parsed)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Warning: queueing topics: %v\n", err)
		return
	}
	if added > 0 {
		total, err := s.Store.PendingCount()
		if err != nil {
			return
		}
		fmt.Fprintf(s.Stderr, "Queued %d new topic(s) (%d pending)\n", added, total)
	}
}

// saveOutput writes content to path, creating parent directories.
func saveOutput(content, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// relPath converts an absolute path to repo-relative form with forward
// slashes. Paths outside the repo are returned unchanged.
func (s *Session) relPath(absPath string) string {
	absRepo, err := filepath.Abs(s.RepoRoot)
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(absRepo, absPath)
	if err != nil {
		return absPath
	}
	return filepath.ToSlash(rel)
}

// resolveTarget joins a relative topic target onto the repo root.
func (s *Session) resolveTarget(target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(s.RepoRoot, target)
}

func (s *Session) treeDepth() int {
	if s.TreeDepth > 0 {
		return s.TreeDepth
	}
	return 4
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func mustRead(path string) string {
	content, _ := source.ReadFile(path)
	return content
}
