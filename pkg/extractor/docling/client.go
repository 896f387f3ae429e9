package docling

import (
	"context"
	"errors"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/adrianliechti/docling/pkg/docling"
	"github.com/adrianliechti/docling/pkg/extractor"
	"github.com/adrianliechti/docling/pkg/text"

	"github.com/google/uuid"
)

var _ extractor.Provider = &Client{}

type Client struct {
	client *docling.Client

	options *docling.ConvertOptions
	wait    *docling.WaitOptions
}

func New(client *docling.Client, options ...Option) (*Client, error) {
	if client == nil {
		return nil, errors.New("invalid client")
	}

	c := &Client{
		client: client,
	}

	for _, option := range options {
		option(c)
	}

	if err := c.options.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	format := extractor.FormatText

	if options.Format != nil {
		format = *options.Format
	}

	if format != extractor.FormatText && format != extractor.FormatMarkdown {
		return nil, extractor.ErrUnsupported
	}

	if !isSupported(file) {
		return nil, extractor.ErrUnsupported
	}

	if file.Name == "" {
		if ext := extensionByType(file.ContentType); ext != "" {
			file.Name = uuid.New().String() + ext
		}
	}

	var convert docling.ConvertOptions

	if c.options != nil {
		convert = *c.options
	}

	if len(convert.ToFormats) == 0 {
		convert.ToFormats = []docling.OutputFormat{
			docling.OutputFormatMarkdown,
		}
	}

	result, err := c.client.WaitForConversion(ctx, docling.ConvertRequest{
		Sources: []docling.Source{
			docling.FileSource(file.Name, file.Content),
		},

		Options: &convert,
	}, c.wait)

	if err != nil {
		return nil, err
	}

	return readDocument(result.Document, format)
}

func readDocument(doc docling.Document, format extractor.Format) (*extractor.Document, error) {
	if doc.Markdown != nil && *doc.Markdown != "" {
		if format == extractor.FormatMarkdown {
			return &extractor.Document{
				Name: doc.Filename,

				Text:        *doc.Markdown,
				ContentType: "text/markdown",
			}, nil
		}

		return &extractor.Document{
			Name: doc.Filename,

			Text:        text.MarkdownToText(*doc.Markdown),
			ContentType: "text/plain",
		}, nil
	}

	if doc.Text != nil && *doc.Text != "" {
		content := *doc.Text

		if format == extractor.FormatText {
			if text.IsMarkdown(content) {
				content = text.MarkdownToText(content)
			} else {
				content = text.Normalize(content)
			}
		}

		return &extractor.Document{
			Name: doc.Filename,

			Text:        content,
			ContentType: "text/plain",
		}, nil
	}

	if doc.HTML != nil && *doc.HTML != "" {
		return &extractor.Document{
			Name: doc.Filename,

			Text:        *doc.HTML,
			ContentType: "text/html",
		}, nil
	}

	return nil, errors.New("no content")
}

// extensionByType prefers an extension docling recognizes over the first
// one registered for the mime type (e.g. ".jpg" over ".jpe").
func extensionByType(contentType string) string {
	exts, _ := mime.ExtensionsByType(contentType)

	if len(exts) == 0 {
		return ""
	}

	for _, ext := range exts {
		if slices.Contains(docling.SupportedExtensions, ext) {
			return ext
		}
	}

	return exts[0]
}

func isSupported(file extractor.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(docling.SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(docling.SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}
