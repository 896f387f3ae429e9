package multi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/docling/pkg/extractor"
	"github.com/adrianliechti/docling/pkg/extractor/multi"

	"github.com/stretchr/testify/require"
)

type fixedExtractor struct {
	text string
	err  error

	calls int
}

func (e *fixedExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	e.calls++

	if e.err != nil {
		return nil, e.err
	}

	return &extractor.Document{Text: e.text}, nil
}

func TestFallback(t *testing.T) {
	first := &fixedExtractor{err: extractor.ErrUnsupported}
	second := &fixedExtractor{text: "second"}

	doc, err := multi.New(first, second).Extract(context.Background(), extractor.File{}, nil)
	require.NoError(t, err)
	require.Equal(t, "second", doc.Text)
}

func TestStopsOnError(t *testing.T) {
	boom := errors.New("boom")

	first := &fixedExtractor{err: boom}
	second := &fixedExtractor{text: "second"}

	_, err := multi.New(first, second).Extract(context.Background(), extractor.File{}, nil)
	require.ErrorIs(t, err, boom)
	require.Zero(t, second.calls)
}

func TestNothingSupported(t *testing.T) {
	_, err := multi.New(&fixedExtractor{err: extractor.ErrUnsupported}).Extract(context.Background(), extractor.File{}, nil)
	require.ErrorIs(t, err, extractor.ErrUnsupported)
}
