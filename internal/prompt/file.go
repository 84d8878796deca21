package prompt

import "strings"

// FileContext carries everything gathered for a single-file explanation.
type FileContext struct {
	// Path is the repo-relative path of the file.
	Path string
	// Content is the full file content.
	Content string
	// Imports lists the file's import statements, empty if none.
	Imports []string
	// ImportedBy lists files importing this one, empty if none.
	ImportedBy []string
	// RepoTree is a brief directory-tree context, empty to omit.
	RepoTree string
}

// BuildFile builds the prompt for explaining a single file.
func BuildFile(fc FileContext) string {
	sections := []string{
		"You are a senior software engineer explaining code to a colleague.",
		"Explain the following file: `" + fc.Path + "`",
		"",
	}

	if fc.RepoTree != "" {
		sections = append(sections,
			"## Repository Context",
			"",
			"```",
			fc.RepoTree,
			"```",
			"",
		)
	}

	sections = append(sections,
		"## File Content",
		"",
		"```"+guessLanguage(fc.Path),
		fc.Content,
		"```",
		"",
	)

	if len(fc.Imports) > 0 {
		sections = append(sections, "## Imports", "")
		for _, imp := range fc.Imports {
			sections = append(sections, "- `"+imp+"`")
		}
		sections = append(sections, "")
	}

	if len(fc.ImportedBy) > 0 {
		sections = append(sections, "## Imported By", "")
		for _, f := range fc.ImportedBy {
			sections = append(sections, "- `"+f+"`")
		}
		sections = append(sections, "")
	}

	sections = append(sections,
		"## Instructions",
		"",
		"Explain this file covering:",
		"",
		"1. **Purpose**: What is this file's role in the project?",
		"2. **Key Components**: Important classes, functions, and constants",
		"3. **Patterns**: Design patterns or idioms used",
		"4. **Dependencies**: What it depends on and what depends on it",
		"5. **Flow**: How the code executes (control flow, data transformations)",
		"",
		"Format your response as markdown.",
		"Be concrete — reference specific functions, classes, and line-level details.",
		TopicsInstructions,
	)

	return strings.Join(sections, "\n")
}
