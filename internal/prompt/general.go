package prompt

import "strings"

// GeneralContext carries everything gathered for a free-form topic.
type GeneralContext struct {
	// Question is the topic title the reader wants to understand.
	Question string
	// Tree is the repository structure context.
	Tree string
	// ConfigContent is the project config file content, empty to omit.
	ConfigContent string
}

// BuildGeneral builds the prompt for a general exploration topic, which has
// no concrete file target and leans on repository context instead.
func BuildGeneral(gc GeneralContext) string {
	sections := []string{
		"You are a senior software engineer explaining a codebase to a new team member.",
		"The reader wants to understand: **" + gc.Question + "**",
		"",
		"## Repository Structure",
		"",
		"```",
		gc.Tree,
		"```",
		"",
	}

	if gc.ConfigContent != "" {
		sections = append(sections,
			"## Project Configuration",
			"",
			"```",
			gc.ConfigContent,
			"```",
			"",
		)
	}

	sections = append(sections,
		"",
		"## Instructions",
		"",
		"Explain **"+gc.Question+"** in the context of this codebase.",
		"Reference specific files, modules, and patterns.",
		"If you can identify the relevant source files, include key code snippets.",
		"",
		"Format your response as markdown.",
		TopicsInstructions,
	)

	return strings.Join(sections, "\n")
}
