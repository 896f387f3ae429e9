package text

import (
	"context"
	"path"
	"slices"
	"strings"
	"unicode"

	"github.com/adrianliechti/docling/pkg/extractor"
	"github.com/adrianliechti/docling/pkg/text"
)

var _ extractor.Provider = &Extractor{}

// Extractor returns text files as they are, without a server round trip.
type Extractor struct {
}

func New() (*Extractor, error) {
	return &Extractor{}, nil
}

func (e *Extractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if !detectText(file) {
		return nil, extractor.ErrUnsupported
	}

	content := string(file.Content)
	contentType := file.ContentType

	if contentType == "" {
		contentType = "text/plain"
	}

	markdown := contentType == "text/markdown" || strings.EqualFold(path.Ext(file.Name), ".md") || text.IsMarkdown(content)

	if markdown && (options.Format == nil || *options.Format == extractor.FormatText) {
		content = text.MarkdownToText(content)
		contentType = "text/plain"
	}

	return &extractor.Document{
		Name: file.Name,

		Text:        content,
		ContentType: contentType,
	}, nil
}

func detectText(file extractor.File) bool {
	if isSupported(file) {
		return true
	}

	if len(file.Content) == 0 {
		return false
	}

	var printable int

	for _, b := range file.Content {
		if b == 0 {
			return false
		}

		if unicode.IsPrint(rune(b)) || b == '\n' || b == '\r' || b == '\t' {
			printable++
		}
	}

	return printable > (len(file.Content) * 90 / 100)
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}
