package prompt

import "strings"

// FunctionContext carries everything gathered for a symbol explanation.
type FunctionContext struct {
	// Path is the repo-relative path of the defining file.
	Path string
	// Symbol is the function or class name.
	Symbol string
	// Source is the extracted source span of the symbol.
	Source string
	// FileContent is the full file for surrounding context, empty to omit.
	FileContent string
	// RelatedTests lists related test file paths, empty if none.
	RelatedTests []string
}

// BuildFunction builds the prompt for explaining a function or class.
func BuildFunction(fc FunctionContext) string {
	sections := []string{
		"You are a senior software engineer explaining code to a colleague.",
		"Explain the following symbol `" + fc.Symbol + "` from `" + fc.Path + "`.",
		"",
		"## Source Code",
		"",
		"```" + guessLanguage(fc.Path),
		fc.Source,
		"```",
		"",
	}

	if fc.FileContent != "" {
		sections = append(sections,
			"## Full File Context",
			"",
			"The symbol is defined in `"+fc.Path+"`. Here is the full file for context:",
			"",
			"```"+guessLanguage(fc.Path),
			fc.FileContent,
			"```",
			"",
		)
	}

	if len(fc.RelatedTests) > 0 {
		sections = append(sections, "## Related Tests", "")
		for _, test := range fc.RelatedTests {
			sections = append(sections, "- `"+test+"`")
		}
		sections = append(sections, "")
	}

	sections = append(sections,
		"## Instructions",
		"",
		"Explain this function/class covering:",
		"",
		"1. **Purpose**: What does it do and why does it exist?",
		"2. **Parameters**: What each parameter means and expected types/values",
		"3. **Return Value**: What it returns and when",
		"4. **Algorithm**: Step-by-step walkthrough of the logic",
		"5. **Side Effects**: Any mutations, I/O, or state changes",
		"6. **Error Handling**: How errors are handled or propagated",
		"7. **Usage**: How this is typically called (based on context)",
		"",
		"Format your response as markdown.",
		"Be precise — explain the actual logic, not just paraphrase the code.",
		TopicsInstructions,
	)

	return strings.Join(sections, "\n")
}
