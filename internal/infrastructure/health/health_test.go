package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeTool struct{ available bool }

func (f *fakeTool) ToolAvailable() bool { return f.available }

type fakeBot struct{ running bool }

func (f *fakeBot) IsRunning() bool { return f.running }

type fakeLoad struct{ count int }

func (f *fakeLoad) ActiveCount() int { return f.count }

func newHandler(toolOK, botOK bool, active int) *Handler {
	return NewHandler(&fakeTool{available: toolOK}, &fakeBot{running: botOK}, &fakeLoad{count: active}, zerolog.Nop())
}

func doHealthCheck(t *testing.T, handler *Handler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return w, response
}

func TestHealthAllHealthy(t *testing.T) {
	w, response := doHealthCheck(t, newHandler(true, true, 2))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, HealthStatusHealthy, response.Status)
	require.Equal(t, 2, response.ActiveExtractions)
	require.Len(t, response.Components, 2)
	for _, comp := range response.Components {
		require.True(t, comp.Healthy, "component %s should be healthy", comp.Name)
	}
}

func TestHealthToolMissing(t *testing.T) {
	w, response := doHealthCheck(t, newHandler(false, true, 0))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, HealthStatusDegraded, response.Status)
}

func TestHealthAllUnhealthy(t *testing.T) {
	w, response := doHealthCheck(t, newHandler(false, false, 0))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, HealthStatusUnhealthy, response.Status)
}

func TestHealthMethodNotAllowed(t *testing.T) {
	handler := newHandler(true, true, 0)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestHealthResponseHeaders(t *testing.T) {
	w, _ := doHealthCheck(t, newHandler(true, true, 0))

	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
