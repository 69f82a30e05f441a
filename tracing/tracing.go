// Package tracing wires OpenTelemetry into the LowCode SDK. Every API request
// and every MCP tool call gets its own span; Setup decides where they go.
package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of SDK spans
const TracerName = "lowcodeapi-go"

// Config selects the exporter and sampling for the SDK's spans
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	OTLPEndpoint   string // OTLP/HTTP collector; stderr pretty-printer when empty
	SampleRate     float64
}

// DefaultConfig reads the standard OTEL_* variables. Tracing is off unless
// OTEL_ENABLED=true or a collector endpoint is set.
func DefaultConfig() Config {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	env := os.Getenv("OTEL_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	return Config{
		ServiceName:    TracerName,
		ServiceVersion: "0.1.0",
		Environment:    env,
		Enabled:        os.Getenv("OTEL_ENABLED") == "true" || endpoint != "",
		OTLPEndpoint:   endpoint,
		SampleRate:     1.0,
	}
}

// Setup installs a global tracer provider and trace-context propagator and
// returns its shutdown function. A disabled config installs nothing.
func Setup(ctx context.Context, config Config) (func(context.Context) error, error) {
	if !config.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := newExporter(ctx, config.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// newExporter picks OTLP when an endpoint is given. stdout carries the MCP
// protocol, so the fallback writes to stderr.
func newExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	if endpoint != "" {
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	return stdouttrace.New(
		stdouttrace.WithWriter(os.Stderr),
		stdouttrace.WithPrettyPrint(),
	)
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Tracer returns the SDK tracer from the current global provider
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartAPISpan starts the client span for one LowCode API request.
// Named "lowcode.<module> <METHOD>".
func StartAPISpan(ctx context.Context, module, method, path string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("lowcode.module", module),
		attribute.String("http.request.method", method),
	}
	if path != "" {
		attrs = append(attrs, attribute.String("url.path", path))
	}
	return Tracer().Start(ctx, "lowcode."+module+" "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// StartToolSpan starts the server span for one MCP tool call
func StartToolSpan(ctx context.Context, tool, category, module string, readOnly bool) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "mcp.tool."+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("mcp.tool.name", tool),
			attribute.String("mcp.tool.category", category),
			attribute.String("mcp.tool.module", module),
			attribute.Bool("mcp.tool.readonly", readOnly),
		),
	)
}

// Finish marks the span failed when err is set, ok otherwise. It does not end it.
func Finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// InjectHeaders writes the active trace context into outgoing request headers
func InjectHeaders(ctx context.Context, header propagation.TextMapCarrier) {
	otel.GetTextMapPropagator().Inject(ctx, header)
}
