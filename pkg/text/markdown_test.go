package text

import (
	"testing"
)

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"Just a sentence.", false},
		{"# Title only", false},
		{"- item one\n- item two", false},
		{"# Title\n\n- item one\n- item two", true},
		{"See [docs](https://example.com) and **bold** text.", true},
		{"| A | B |\n|---|---|\n| 1 | 2 |\n\n## Results", true},
	}

	for _, tt := range tests {
		if got := IsMarkdown(tt.input); got != tt.expected {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestMarkdownToText(t *testing.T) {
	input := "# Title\n\n" +
		"Some **bold** and *italic* text with a [link](https://example.com).\n\n" +
		"- one\n" +
		"- two\n\n" +
		"| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n\n" +
		"---\n\n" +
		"```go\n" +
		"code\n" +
		"```\n"

	expected := "Title\n\n" +
		"Some bold and italic text with a link.\n\n" +
		"one\n" +
		"two\n\n" +
		"A\tB\n" +
		"1\t2\n\n" +
		"code"

	if got := MarkdownToText(input); got != expected {
		t.Errorf("MarkdownToText() = %q, want %q", got, expected)
	}
}

func TestMarkdownToTextSoftBreak(t *testing.T) {
	if got := MarkdownToText("first line\nsecond line"); got != "first line second line" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestMarkdownToTextEmpty(t *testing.T) {
	if got := MarkdownToText(""); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestNormalizePageBreaks(t *testing.T) {
	input := "Page one\fPage two\n<!-- page-break -->\nPage\u00a0three"

	if got := Normalize(input); got != "Page one\n\nPage two\n\nPage three" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestNormalize(t *testing.T) {
	input := "  first   line\r\n\r\n\r\nsecond\t line  "

	if got := Normalize(input); got != "first line\n\nsecond line" {
		t.Errorf("Normalize() = %q", got)
	}
}
