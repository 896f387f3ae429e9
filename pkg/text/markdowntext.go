package text

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// MarkdownToText renders markdown as plain text.
//
// Blocks are separated by blank lines, list items and table rows by newlines and
// table cells by tabs. Link targets, raw HTML and rules are dropped.
func MarkdownToText(input string) string {
	source := []byte(input)
	doc := markdown.Parser().Parse(text.NewReader(source))

	return renderBlocks(doc, source, "\n\n")
}

func renderBlocks(n ast.Node, source []byte, sep string) string {
	var blocks []string

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if s := strings.TrimSpace(renderBlock(child, source)); s != "" {
			blocks = append(blocks, s)
		}
	}

	return strings.Join(blocks, sep)
}

func renderBlock(n ast.Node, source []byte) string {
	switch n.Kind() {
	case ast.KindHeading, ast.KindParagraph, ast.KindTextBlock:
		return renderInline(n, source)

	case ast.KindCodeBlock, ast.KindFencedCodeBlock:
		var b strings.Builder

		lines := n.Lines()

		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			b.Write(segment.Value(source))
		}

		return strings.TrimRight(b.String(), "\n")

	case ast.KindList:
		return renderBlocks(n, source, "\n")

	case ast.KindListItem:
		return renderBlocks(n, source, "\n")

	case east.KindTable:
		var rows []string

		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			var cells []string

			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, strings.TrimSpace(renderInline(cell, source)))
			}

			rows = append(rows, strings.Join(cells, "\t"))
		}

		return strings.Join(rows, "\n")

	case ast.KindThematicBreak, ast.KindHTMLBlock:
		return ""
	}

	return renderBlocks(n, source, "\n\n")
}

func renderInline(n ast.Node, source []byte) string {
	var b strings.Builder

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))

			if node.HardLineBreak() {
				b.WriteString("\n")
			} else if node.SoftLineBreak() {
				b.WriteString(" ")
			}

		case *ast.String:
			b.Write(node.Value)

		case *ast.AutoLink:
			b.Write(node.URL(source))

		case *ast.RawHTML, *east.TaskCheckBox:

		default:
			b.WriteString(renderInline(child, source))
		}
	}

	return b.String()
}
