package bootstrap

import (
	"context"
	"log/slog"

	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/internal/pkg/tracing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		metrics.NewRecorder,
		NewTracerProvider,
	),
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sdktrace.TracerProvider, error) {
	tp, err := tracing.NewProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if cfg.Tracing.Endpoint != "" {
		logger.Info("trace export enabled", "endpoint", cfg.Tracing.Endpoint)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return tp, nil
}
