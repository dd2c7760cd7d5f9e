// Package telemetry configures the OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"sportshub/internal/pkg/config"
	"sportshub/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const exporterTimeout = 10 * time.Second

// Provider wraps the SDK provider so callers can shut it down without
// knowing whether tracing was enabled.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// Init installs a global tracer provider exporting over OTLP/gRPC. When
// telemetry is disabled the global no-op provider stays in place.
func Init(ctx context.Context, cfg config.TelemetryConfig) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		slog.Info("tracing disabled")
		return &Provider{}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create telemetry resource")
	}

	exportCtx, cancel := context.WithTimeout(ctx, exporterTimeout)
	defer cancel()

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(exportCtx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create trace exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(5*time.Second),
			sdktrace.WithMaxExportBatchSize(512),
		),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)

	slog.Info("tracing enabled", "endpoint", cfg.Endpoint, "service", cfg.ServiceName)
	return &Provider{tp: tp}, nil
}

func (p *Provider) Enabled() bool {
	return p != nil && p.tp != nil
}

func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		return errs.Wrap(err, "failed to shut down tracer provider")
	}
	return nil
}
