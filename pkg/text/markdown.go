package text

import "regexp"

var markdownFeatures = []*regexp.Regexp{
	// headings
	regexp.MustCompile(`(?m)^#{1,6}\s+.+$`),

	// code fences
	regexp.MustCompile("(?m)^(```|~~~)"),

	// lists
	regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+.+$`),

	// links and images
	regexp.MustCompile(`!?\[([^\]]+)\]\(([^)]+)\)`),

	// blockquotes
	regexp.MustCompile(`(?m)^>\s+.+$`),

	// pipe tables
	regexp.MustCompile(`(?m)^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`),

	// emphasis
	regexp.MustCompile(`(\*\*|__)[^*_\n]+(\*\*|__)`),
}

// IsMarkdown reports whether text uses at least two distinct markdown features.
// A single feature is not enough: plain text often starts lines with "-" or "#".
func IsMarkdown(text string) bool {
	if text == "" {
		return false
	}

	found := 0

	for _, feature := range markdownFeatures {
		if !feature.MatchString(text) {
			continue
		}

		found++

		if found >= 2 {
			return true
		}
	}

	return false
}
