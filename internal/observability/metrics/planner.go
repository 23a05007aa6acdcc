package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const plannerMeterName = "planning.service"

type PlannerMetrics struct {
	eventsProcessed    metric.Int64Counter
	notificationsBuilt metric.Int64Counter
	buildDuration      metric.Float64Histogram
}

func NewPlannerMetrics() (*PlannerMetrics, error) {
	meter := otel.Meter(plannerMeterName)

	eventsProcessed, err := meter.Int64Counter(
		"planning_events_total",
		metric.WithDescription("Total number of schedule events processed, by outcome"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsBuilt, err := meter.Int64Counter(
		"planning_notifications_built_total",
		metric.WithDescription("Total number of notification describers built, by type"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	buildDuration, err := meter.Float64Histogram(
		"planning_build_duration_seconds",
		metric.WithDescription("Planning pass duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
		),
	)
	if err != nil {
		return nil, err
	}

	return &PlannerMetrics{
		eventsProcessed:    eventsProcessed,
		notificationsBuilt: notificationsBuilt,
		buildDuration:      buildDuration,
	}, nil
}

// RecordEventProcessed records one processed event; outcome is either
// "scheduled" or the break reason.
func (m *PlannerMetrics) RecordEventProcessed(ctx context.Context, outcome string) {
	m.eventsProcessed.Add(ctx, 1,
		metric.WithAttributes(attribute.String("outcome", outcome)),
	)
}

func (m *PlannerMetrics) RecordNotificationsBuilt(ctx context.Context, notificationType string, count int) {
	if count == 0 {
		return
	}
	m.notificationsBuilt.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("type", notificationType)),
	)
}

func (m *PlannerMetrics) RecordBuildDuration(ctx context.Context, seconds float64) {
	m.buildDuration.Record(ctx, seconds)
}
