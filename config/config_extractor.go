package config

import (
	"github.com/adrianliechti/docling/pkg/docling"
	"github.com/adrianliechti/docling/pkg/extractor"
	extractordocling "github.com/adrianliechti/docling/pkg/extractor/docling"
	"github.com/adrianliechti/docling/pkg/extractor/multi"
	"github.com/adrianliechti/docling/pkg/extractor/text"
	"github.com/adrianliechti/docling/pkg/limiter"
	"github.com/adrianliechti/docling/pkg/otel"
)

// Extractor returns the docling extractor wrapped with rate limiting and
// telemetry. Plain text files docling does not accept are read locally.
func (cfg *Config) Extractor(client *docling.Client) (extractor.Provider, error) {
	wait := cfg.Wait

	d, err := extractordocling.New(client,
		extractordocling.WithOptions(cfg.Options),
		extractordocling.WithWait(&wait),
	)

	if err != nil {
		return nil, err
	}

	t, err := text.New()

	if err != nil {
		return nil, err
	}

	var e extractor.Provider = limiter.NewExtractor(createLimiter(cfg.Limit), d)

	e = multi.New(e, t)
	e = otel.NewExtractor("docling", e)

	return e, nil
}
