package prompt

import "strings"

// RepoContext carries everything gathered for a repository overview.
type RepoContext struct {
	// Tree is the filtered directory tree.
	Tree string
	// ConfigContent is the project config file content, empty to omit.
	ConfigContent string
	// ReadmeContent is the README content, empty to omit.
	ReadmeContent string
	// EntryPoints lists identified entry point files, empty if none.
	EntryPoints []string
}

// BuildRepo builds the prompt for a repository architecture overview.
func BuildRepo(rc RepoContext) string {
	sections := []string{
		"You are a senior software engineer explaining a codebase to a new team member.",
		"Provide a clear, structured overview of this repository.",
		"",
		"## Directory Structure",
		"",
		"```",
		rc.Tree,
		"```",
	}

	if rc.ConfigContent != "" {
		sections = append(sections,
			"",
			"## Project Configuration",
			"",
			"```",
			rc.ConfigContent,
			"```",
		)
	}

	if rc.ReadmeContent != "" {
		sections = append(sections,
			"",
			"## README",
			"",
			rc.ReadmeContent,
		)
	}

	if len(rc.EntryPoints) > 0 {
		sections = append(sections, "", "## Entry Points", "")
		for _, ep := range rc.EntryPoints {
			sections = append(sections, "- "+ep)
		}
	}

	sections = append(sections,
		"",
		"## Instructions",
		"",
		"Write a comprehensive overview covering:",
		"",
		"1. **Purpose**: What does this project do? What problem does it solve?",
		"2. **Architecture**: High-level architecture and design patterns used",
		"3. **Key Components**: The most important modules/packages and their roles",
		"4. **Data Flow**: How data flows through the system",
		"5. **Dependencies**: Notable external dependencies and why they're used",
		"6. **Entry Points**: How the application is started/invoked",
		"7. **Configuration**: How the project is configured",
		"",
		"Format your response as markdown with clear sections and headers.",
		"Be specific — reference actual file and directory names from the tree.",
		"Focus on helping someone new understand the codebase quickly.",
		TopicsInstructions,
	)

	return strings.Join(sections, "\n")
}
