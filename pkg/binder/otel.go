package binder

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for binder spans.
const defaultTracerName = "querykit"

// TracingConfig configures the OpenTelemetry decode spans.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "querykit").
	TracerName string

	// IncludeQuery includes the raw query string in span attributes.
	// Query strings can carry user data - disabled by default.
	IncludeQuery bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TracingOption configures the OpenTelemetry decode spans.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithIncludeQuery enables recording the raw query string on spans.
func WithIncludeQuery(include bool) TracingOption {
	return func(c *TracingConfig) {
		c.IncludeQuery = include
	}
}

// defaultTracingConfig returns the default tracing configuration.
func defaultTracingConfig() TracingConfig {
	return TracingConfig{
		TracerName: defaultTracerName,
	}
}

// resolve fetches the tracer from the global OpenTelemetry tracer provider;
// configure the provider in main() before serving. Called once when the
// middleware is built, so concurrent requests share one tracer.
func (c *TracingConfig) resolve() {
	c.tracer = otel.Tracer(c.TracerName)
}

// start opens a decode span. The returned func ends the span, recording the
// coercion error and span status.
func (c *TracingConfig) start(ctx context.Context, namespace, rawQuery string) (context.Context, func(error)) {
	attrs := []attribute.KeyValue{
		attribute.String("querykit.namespace", namespace),
	}
	if c.IncludeQuery {
		attrs = append(attrs, attribute.String("querykit.raw_query", rawQuery))
	}

	ctx, span := c.tracer.Start(ctx, "querykit.decode",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
