package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
)

func newTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, exporter
}

// routed mounts mw and h on a chi router at pattern, the way the server does.
func routed(mw func(http.Handler) http.Handler, method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Method(method, pattern, h)
	return r
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_SpanUsesRoutePattern(t *testing.T) {
	t.Parallel()

	tp, exporter := newTracer(t)
	handler := routed(middleware.OpenTelemetry(tp, nil), http.MethodGet, "/todo/api/lists/{listId}",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/todo/api/lists/42", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /todo/api/lists/{listId}", spans[0].Name())

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "GET", attrs["http.method"].AsString())
	assert.Equal(t, "/todo/api/lists/{listId}", attrs["http.route"].AsString())
	assert.Equal(t, "/todo/api/lists/42", attrs["url.path"].AsString())
	assert.Equal(t, int64(http.StatusNotFound), attrs["http.status_code"].AsInt64())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code, "4xx must not mark the span as failed")
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	t.Parallel()

	tp, exporter := newTracer(t)
	handler := routed(middleware.OpenTelemetry(tp, nil), http.MethodPost, "/todo/api/lists",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) })

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/todo/api/lists", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestOpenTelemetry_UnroutedRequest(t *testing.T) {
	t.Parallel()

	tp, exporter := newTracer(t)
	handler := middleware.OpenTelemetry(tp, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET unmatched", spans[0].Name())
}

func TestOpenTelemetry_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test")
	require.NoError(t, err)

	tp, _ := newTracer(t)
	handler := routed(middleware.OpenTelemetry(tp, metrics), http.MethodGet, "/todo/api/lists/{listId}",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	for _, id := range []string{"1", "2"} {
		handler.ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodGet, "/todo/api/lists/"+id, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				assert.Equal(t, "/todo/api/lists/{listId}", route.AsString())
				total += dp.Value
			}
		}
	}
	assert.Equal(t, int64(2), total, "both requests share one route series")
}

// Not parallel: installs the global propagator.
func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	tp, exporter := newTracer(t)
	handler := middleware.OpenTelemetry(tp, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
}
