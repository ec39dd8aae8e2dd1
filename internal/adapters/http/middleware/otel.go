package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
)

const (
	tracerName = "github.com/jsamuelsen11/todo-list-service/http"

	// unmatchedRoute labels requests chi could not route, keeping metric
	// cardinality bounded.
	unmatchedRoute = "unmatched"
)

// OpenTelemetry returns middleware that opens a server span per request,
// continuing any W3C trace context found in the headers, and records the
// server request metrics. Span names and the http.route attribute use the
// chi route pattern, known once routing has run. A nil tp uses the global
// TracerProvider; nil metrics skips recording.
func OpenTelemetry(tp trace.TracerProvider, metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(sr.status),
			)
			if sr.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sr.status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, sr.status, time.Since(start))
		})
	}
}

// routePattern reads the matched pattern from chi's routing context. The
// context is shared with the router, so it is complete after next returns.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}

func recordServerMetrics(
	ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration,
) {
	if metrics == nil {
		return
	}

	result := telemetry.ResultSuccess
	if status >= http.StatusBadRequest {
		result = telemetry.ResultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
