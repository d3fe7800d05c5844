package generator

import "strings"

// parsePrerequisites reads the annotation on the line following a topic.
// `Prerequisites: None` and anything that is not an annotation yield an empty,
// non-nil slice. Items are comma-separated and trimmed; empty items are kept.
func parsePrerequisites(line string) []string {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, PrerequisitesPrefix) {
		return []string{}
	}
	text := strings.TrimSpace(strings.TrimPrefix(line, PrerequisitesPrefix))
	if text == "None" {
		return []string{}
	}
	parts := strings.Split(text, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// followingLine returns the line after pos, if any.
func followingLine(lines []string, pos int) (string, bool) {
	if pos+1 >= len(lines) {
		return "", false
	}
	return lines[pos+1], true
}
