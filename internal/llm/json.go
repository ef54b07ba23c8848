package llm

import "strings"

// cleanMarkdownWrapper removes a ```json ... ``` fence around a completion.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		// Drop the language tag line.
		content = content[nl+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// ExtractJSONObject returns the text from the first '{' to the last '}' of a
// completion, after removing any markdown fence. Models often wrap the object
// in prose, so everything outside the outermost braces is ignored.
func ExtractJSONObject(completion string) (string, bool) {
	content := cleanMarkdownWrapper(completion)

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end < start {
		return "", false
	}
	return content[start : end+1], true
}
