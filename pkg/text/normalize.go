package text

import (
	"regexp"
	"strings"
)

var (
	pageBreakPattern  = regexp.MustCompile(`(?m)^\s*<!--\s*page[-_ ]?break\s*-->\s*$|\f`)
	spacePattern      = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up text exported from a converted document. Page breaks
// (form feeds or page-break comments) become paragraph breaks, runs of spaces
// collapse to one and at most one blank line separates paragraphs.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = pageBreakPattern.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSpace(spacePattern.ReplaceAllString(line, " "))
	}

	text = strings.Join(lines, "\n")
	text = blankLinesPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
