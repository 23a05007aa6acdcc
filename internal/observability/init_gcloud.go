//go:build gcloud

package observability

import (
	"context"
	"os"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"

	"github.com/KasumiMercury/primind-notification-planning/internal/observability/logging"
)

// Init sets up the logger and Google Cloud trace/metric exporters.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.Init(cfg.Environment, cfg.LogLevel)

	res := &Resources{logger: logger}

	projectID := os.Getenv("GCLOUD_PROJECT_ID")

	traceExp, err := texporter.New(texporter.WithProjectID(projectID))
	if err != nil {
		return nil, err
	}

	metricExp, err := mexporter.New(mexporter.WithProjectID(projectID))
	if err != nil {
		return nil, err
	}

	res.shutdowns = installProviders(cfg, newResource(cfg), traceExp, metricExp)

	return res, nil
}
