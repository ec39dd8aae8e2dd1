package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPRoute      = attribute.Key("http.route")
	AttrHTTPStatus     = attribute.Key("http.status_code")
	AttrStoreDriver    = attribute.Key("store.driver")
	AttrStoreOperation = attribute.Key("store.operation")
	AttrResult         = attribute.Key("result")
)

// Values of AttrResult. Rejected marks calls refused by the store's
// circuit breaker or rate limiter without reaching the backend.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultRejected = "rejected"
)

// Metrics are the instruments recorded by the HTTP middleware and the
// instrumented store. A nil *Metrics records nothing.
type Metrics struct {
	ServerRequestDuration  metric.Float64Histogram
	ServerRequestTotal     metric.Int64Counter
	StoreOperationDuration metric.Float64Histogram
	StoreOperationTotal    metric.Int64Counter
}

// NewMetrics creates the instruments on the meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	b := instruments{meter: mp.Meter(scope)}

	m := &Metrics{
		ServerRequestDuration:  b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:     b.count("http.server.request.total", "{request}", "Incoming HTTP requests"),
		StoreOperationDuration: b.seconds("store.operation.duration", "Duration of document store operations"),
		StoreOperationTotal:    b.count("store.operation.total", "{operation}", "Document store operations"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// instruments collects creation errors so NewMetrics can report them all.
type instruments struct {
	meter metric.Meter
	errs  []error
}

func (b *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *instruments) count(name, unit, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
