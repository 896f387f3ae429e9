package otel

import (
	"context"
	"errors"

	"github.com/adrianliechti/docling/pkg/docling"

	"go.opentelemetry.io/otel/attribute"
)

// errorType names the failure kind for the error.type attribute.
func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, docling.ErrNetwork):
		return "network"
	case errors.Is(err, docling.ErrAPI):
		return "api"
	case errors.Is(err, docling.ErrDecode):
		return "decode"
	case errors.Is(err, docling.ErrFile):
		return "file"
	case errors.Is(err, docling.ErrTaskFailed):
		return "task_failed"
	case errors.Is(err, docling.ErrTimeout):
		return "timeout"
	case errors.Is(err, docling.ErrInvalidOptions):
		return "invalid_options"
	}

	return "_OTHER"
}

func errorAttrs(err error) []attribute.KeyValue {
	if err == nil {
		return nil
	}

	return []attribute.KeyValue{
		attribute.String("error.type", errorType(err)),
	}
}
