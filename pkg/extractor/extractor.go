package extractor

import (
	"context"
	"errors"
)

type Provider interface {
	Extract(ctx context.Context, file File, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

type ExtractOptions struct {
	Format *Format
}

type Document struct {
	Name string

	Text        string
	ContentType string
}
