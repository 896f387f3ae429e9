package limiter_test

import (
	"context"
	"testing"

	"github.com/adrianliechti/docling/pkg/extractor"
	"github.com/adrianliechti/docling/pkg/limiter"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingExtractor struct {
	calls int
}

func (e *countingExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	e.calls++

	return &extractor.Document{
		Name: file.Name,
		Text: "text",
	}, nil
}

func TestExtractor(t *testing.T) {
	p := &countingExtractor{}
	e := limiter.NewExtractor(rate.NewLimiter(rate.Limit(1), 1), p)

	doc, err := e.Extract(context.Background(), extractor.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)
	require.Equal(t, "a.pdf", doc.Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.Extract(ctx, extractor.File{Name: "b.pdf"}, nil)
	require.Error(t, err)

	require.Equal(t, 1, p.calls)
}

func TestExtractorWithoutLimit(t *testing.T) {
	p := &countingExtractor{}
	e := limiter.NewExtractor(nil, p)

	for range 3 {
		_, err := e.Extract(context.Background(), extractor.File{}, nil)
		require.NoError(t, err)
	}

	require.Equal(t, 3, p.calls)
}
