//go:build !gcloud

package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/KasumiMercury/primind-notification-planning/internal/observability/logging"
)

// Init sets up the logger and, when an OTLP endpoint is configured, OTLP HTTP
// exporters. Without an endpoint the service runs with logging only.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.Init(cfg.Environment, cfg.LogLevel)

	res := &Resources{logger: logger}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return res, nil
	}

	var traceExp sdktrace.SpanExporter
	traceExp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	var metricExp sdkmetric.Exporter
	metricExp, err = otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res.shutdowns = installProviders(cfg, newResource(cfg), traceExp, metricExp)

	return res, nil
}
