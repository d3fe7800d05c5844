package generator

import (
	"errors"
	"regexp"
	"strings"
)

// PrerequisitesPrefix marks a prerequisite annotation line.
const PrerequisitesPrefix = "Prerequisites:"

var outlinePattern = regexp.MustCompile(`^([\d.]+)\.[\s\p{Zs}]+(.+)$`)

var errEmptySegment = errors.New("empty leading numbering segment")

// candidate is a non-blank, non-annotation line together with its position in
// the original document.
type candidate struct {
	text string
	pos  int
}

// OutlineLine is a matched `<numbering>. <name>` line.
type OutlineLine struct {
	Numbering string
	Name      string
}

// SplitLines splits a document into lines. Carriage returns are left in place
// and removed later by trimming.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// scanLines drops blank lines and prerequisite annotations, keeping order and
// the original index of every survivor.
func scanLines(lines []string) []candidate {
	out := make([]candidate, 0, len(lines))
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, PrerequisitesPrefix) {
			continue
		}
		out = append(out, candidate{text: line, pos: i})
	}
	return out
}

// matchOutline recognizes lines like `2.1. Sorting`.
func matchOutline(line string) (OutlineLine, bool) {
	m := outlinePattern.FindStringSubmatch(line)
	if m == nil {
		return OutlineLine{}, false
	}
	name := strings.TrimSpace(m[2])
	if name == "" {
		return OutlineLine{}, false
	}
	return OutlineLine{Numbering: m[1], Name: name}, true
}

// segments splits a numbering into its dot-separated parts.
func segments(numbering string) []string {
	return strings.Split(numbering, ".")
}

// topicID joins the whitespace-separated words of name with hyphens.
func topicID(name string) string {
	return strings.Join(strings.Fields(name), "-")
}

// folderPath renders plans/<NN>-<rest...>-<id>. The first segment must be
// non-empty; it is rendered as a decimal of any length.
func folderPath(numbering, id string) (string, error) {
	parts := segments(numbering)
	if parts[0] == "" {
		return "", errEmptySegment
	}
	rendered := make([]string, 0, len(parts)+1)
	rendered = append(rendered, twoDigits(parts[0]))
	rendered = append(rendered, parts[1:]...)
	rendered = append(rendered, id)
	return FolderRoot + strings.Join(rendered, "-"), nil
}

// twoDigits drops leading zeros from a digit string and pads it back to at
// least two characters.
func twoDigits(digits string) string {
	s := strings.TrimLeft(digits, "0")
	if s == "" {
		s = "0"
	}
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
