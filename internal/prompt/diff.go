package prompt

import "strings"

// DiffContext carries everything gathered for a diff explanation.
type DiffContext struct {
	// Diff is the unified diff output.
	Diff string
	// CommitLog is the commit history for the changes, empty to omit.
	CommitLog string
	// ChangedFiles lists the changed file paths, empty if none.
	ChangedFiles []string
}

// BuildDiff builds the prompt for explaining what changed and why.
func BuildDiff(dc DiffContext) string {
	sections := []string{
		"You are a senior software engineer explaining code changes to a colleague.",
		"Explain what changed in this diff and why.",
		"",
	}

	if dc.CommitLog != "" {
		sections = append(sections,
			"## Commit History",
			"",
			"```",
			dc.CommitLog,
			"```",
			"",
		)
	}

	if len(dc.ChangedFiles) > 0 {
		sections = append(sections, "## Changed Files", "")
		for _, f := range dc.ChangedFiles {
			sections = append(sections, "- `"+f+"`")
		}
		sections = append(sections, "")
	}

	sections = append(sections,
		"## Diff",
		"",
		"```diff",
		dc.Diff,
		"```",
		"",
		"## Instructions",
		"",
		"Explain these changes covering:",
		"",
		"1. **Summary**: One-paragraph overview of what changed",
		"2. **Motivation**: Why were these changes made? (infer from commit messages and code)",
		"3. **File-by-File Breakdown**: For each changed file, explain what changed and why",
		"4. **Impact**: What behavior changes as a result?",
		"5. **Risks**: Any potential issues or things to watch out for",
		"",
		"Format your response as markdown.",
		"Focus on the 'why' — don't just describe what lines were added/removed.",
		TopicsInstructions,
	)

	return strings.Join(sections, "\n")
}
