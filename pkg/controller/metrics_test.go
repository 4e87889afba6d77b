package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"midcar/pkg/controller"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRequests(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(mp, "v1")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	for range 3 {
		mw(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	found := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		found[m.Name] = true
		if m.Name != "http.server.requests" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		require.EqualValues(t, 3, sum.DataPoints[0].Value)
		status, _ := sum.DataPoints[0].Attributes.Value("status")
		require.Equal(t, "404", status.AsString())
	}
	require.True(t, found["http.server.requests"])
	require.True(t, found["http.server.duration"])
}
