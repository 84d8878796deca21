// Package prompt assembles the prompts sent to the generation backend.
// Every prompt ends with the topics instructions so the model surfaces
// follow-up explorations in a parseable shape.
package prompt

// TopicsInstructions is appended to every prompt. The bullet format here
// must stay in sync with what the topics parser accepts.
const TopicsInstructions = "\n" +
	"## Topics to Explore\n" +
	"\n" +
	"After your explanation, add a section titled \"## Topics to Explore\".\n" +
	"List 3-5 things the reader should explore next to deepen their understanding.\n" +
	"Each item MUST use this exact format:\n" +
	"\n" +
	"- [kind] `target` — Description\n" +
	"\n" +
	"Where:\n" +
	"- **kind** is one of: file, function, repo, diff, general\n" +
	"- **target** is the exploration target:\n" +
	"  - For file: the file path (e.g., `src/auth/client.py`)\n" +
	"  - For function: file:symbol (e.g., `src/auth/client.py:login`)\n" +
	"  - For general: a short label (e.g., `dataverse-integration`)\n" +
	"- **Description** explains why this is worth exploring\n" +
	"\n" +
	"Example:\n" +
	"- [file] `src/workflow/executor.py` — Orchestrates the plan-execute-synthesize loop\n" +
	"- [function] `src/router.py:route_request` — Decides which agent handles each request\n" +
	"- [general] `error-handling-strategy` — How failures propagate across agent boundaries\n"

// languageByExt maps file extensions to fenced-code-block language tags.
var languageByExt = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".tsx":  "tsx",
	".jsx":  "jsx",
	".rs":   "rust",
	".go":   "go",
	".java": "java",
	".rb":   "ruby",
	".sh":   "bash",
	".yml":  "yaml",
	".yaml": "yaml",
	".toml": "toml",
	".json": "json",
	".md":   "markdown",
	".sql":  "sql",
	".html": "html",
	".css":  "css",
}

// guessLanguage picks a syntax-highlighting tag from the file extension,
// empty when unknown.
func guessLanguage(path string) string {
	for ext, lang := range languageByExt {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return lang
		}
	}
	return ""
}
