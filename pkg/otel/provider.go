package otel

import (
	"context"
	"errors"
	"net/http"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const instrumentationName = "github.com/adrianliechti/docling"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

type shutdownFunc func(ctx context.Context) error

// Setup installs OTLP exporters for traces, metrics and logs and routes the
// default slog logger through the log bridge. It does nothing unless
// telemetry is enabled. The returned function flushes and stops all exporters.
func Setup(ctx context.Context, service, version string) (func(context.Context) error, error) {
	if !EnableTelemetry {
		return func(context.Context) error { return nil }, nil
	}

	resource, err := sdkresource.New(ctx,
		sdkresource.WithTelemetrySDK(),
		sdkresource.WithAttributes(
			attribute.String("service.name", service),
			attribute.String("service.version", version),
		),
		sdkresource.WithFromEnv(),
	)

	if err != nil {
		return nil, err
	}

	var shutdowns []shutdownFunc

	shutdown := func(ctx context.Context) error {
		var result error

		for _, s := range shutdowns {
			result = errors.Join(result, s(ctx))
		}

		return result
	}

	for _, setup := range []func(context.Context, *sdkresource.Resource) (shutdownFunc, error){
		setupTracer,
		setupMeter,
		setupLogger,
	} {
		s, err := setup(ctx, resource)

		if err != nil {
			shutdown(ctx)
			return nil, err
		}

		shutdowns = append(shutdowns, s)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return shutdown, nil
}

// Transport wraps base with HTTP client spans when telemetry is enabled.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	if !EnableTelemetry {
		return base
	}

	return otelhttp.NewTransport(base)
}
