package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const plannerTracerName = "github.com/KasumiMercury/primind-notification-planning/internal/service/planner"

func PlannerTracer() trace.Tracer {
	return otel.Tracer(plannerTracerName)
}

func StartBuildSpan(ctx context.Context, appletID string, eventCount int) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planning.build",
		trace.WithAttributes(
			attribute.String("applet_id", appletID),
			attribute.Int("event_count", eventCount),
		),
	)
}

func StartEventSpan(ctx context.Context, eventID, entityID string) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planning.process_event",
		trace.WithAttributes(
			attribute.String("event_id", eventID),
			attribute.String("entity_id", entityID),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return PlannerTracer().Start(ctx, "planning.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
	)
}

// InjectToHTTPRequest propagates the current trace context onto an outgoing
// request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
