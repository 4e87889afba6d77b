package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"midcar/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/", nil))

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_Cmdline_OK(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof/")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofMux_NamedProfile(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/goroutine?debug=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local/other", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
