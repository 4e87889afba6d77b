package controller

import (
	"fmt"
	"midcar/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording a request counter and a latency
// histogram through the given meter provider. Requests are labeled with the
// method, the status code and group, a fixed name of the mounted handler, to
// keep the label cardinality bounded.
func WithMetrics(mp metric.MeterProvider, group string) (func(http.Handler) http.Handler, error) {
	meter := mp.Meter("midcar/http")

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Latency of handled HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := metric.WithAttributes(
				attribute.String("group", group),
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
