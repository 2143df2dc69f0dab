package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rados4y/statex/pkg/statex"
)

// Default tracer name for statex instrumentation.
const defaultTracerName = "statex"

// TraceConfig configures the OpenTelemetry coordinator decorator.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "statex").
	TracerName string

	// AttributeExtractor extracts custom attributes for each flushed
	// field. If nil, only the field key is recorded.
	AttributeExtractor func(f *statex.Field) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry coordinator decorator.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(f *statex.Field) []attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.AttributeExtractor = extractor
	}
}

type tracingCoordinator struct {
	next statex.Coordinator
	cfg  TraceConfig
}

// Tracing wraps a coordinator so that every flush runs inside an
// OpenTelemetry span named "statex.flush" carrying the field key.
func Tracing(next statex.Coordinator, opts ...TraceOption) statex.Coordinator {
	cfg := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)

	return &tracingCoordinator{next: next, cfg: cfg}
}

// AddDirty implements statex.Coordinator.
func (t *tracingCoordinator) AddDirty(f *statex.Field) {
	attrs := []attribute.KeyValue{
		attribute.String("statex.field", f.Key()),
		attribute.Bool("statex.dirty", f.Dirty()),
	}
	if t.cfg.AttributeExtractor != nil {
		attrs = append(attrs, t.cfg.AttributeExtractor(f)...)
	}

	_, span := t.cfg.tracer.Start(context.Background(), "statex.flush",
		trace.WithAttributes(attrs...))
	defer span.End()

	t.next.AddDirty(f)
}
