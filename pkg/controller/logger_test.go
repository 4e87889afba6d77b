package controller_test

import (
	"context"
	"midcar/pkg/controller"
	"midcar/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "forwarded chain", forwarded: "81.45.12.9, 10.0.0.2", remoteAddr: "10.0.0.2:443", want: "81.45.12.9"},
		{name: "forwarded skips garbage", forwarded: "unknown, 81.45.12.9", want: "81.45.12.9"},
		{name: "real ip", realIP: "2a02:9130::1", remoteAddr: "10.0.0.2:443", want: "2a02:9130::1"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "unparseable remote addr", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/public/vehicles", nil)
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// observe routes the package-level logger into an observer for one test.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetDefault(zap.New(core))
	t.Cleanup(func() { logger.Setup(logger.DevelopmentEnvironment) })

	return logs
}

func TestWithLogger_RequestID(t *testing.T) {
	observe(t)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodPost, "/v1/vehicles", nil)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.Len(t, seen, 27, "generated ids are ksuids")
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestWithLogger_AccessLog(t *testing.T) {
	logs := observe(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte("hello"))
		}
	})
	h := controller.WithLogger(next)

	for _, target := range []string{"/v1/public/vehicles?q=juan+perez", "/missing", "/broken"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	entries := logs.FilterMessage("access").All()
	require.Len(t, entries, 3)

	ok := entries[0].ContextMap()
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "/v1/public/vehicles", ok["path"], "query string is not logged")
	require.EqualValues(t, 200, ok["status"])
	require.EqualValues(t, 5, ok["bytes"])
	require.NotEmpty(t, ok["request_id"])

	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestWithLogger_ContextLoggerCarriesRequestID(t *testing.T) {
	logs := observe(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Context(), "handler")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	req.Header.Set("X-Request-Id", "req-1")
	controller.WithLogger(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("handler").All()
	require.Len(t, entries, 1)
	require.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
}
