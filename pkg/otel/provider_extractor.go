package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/docling/pkg/extractor"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Extractor interface {
	Observable
	extractor.Provider
}

type observableExtractor struct {
	name string

	extractor extractor.Provider

	durationMetric metric.Float64Histogram
}

func NewExtractor(name string, p extractor.Provider) Extractor {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("docling.extract.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of document extractions"),
	)

	return &observableExtractor{
		name: name,

		extractor: p,

		durationMetric: durationMetric,
	}
}

func (p *observableExtractor) otelSetup() {
}

func (p *observableExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "extract "+p.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("docling.extractor", p.name),
			attribute.String("file.name", file.Name),
			attribute.Int("file.size", len(file.Content)),
		),
	)
	defer span.End()

	timestamp := time.Now()

	result, err := p.extractor.Extract(ctx, file, options)

	attrs := append([]attribute.KeyValue{
		attribute.String("docling.extractor", p.name),
	}, errorAttrs(err)...)

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))

	if err != nil {
		span.SetAttributes(errorAttrs(err)...)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.String("docling.content_type", result.ContentType))

	return result, nil
}
