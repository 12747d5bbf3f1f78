package admin

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emperorhan/auto-data-switch-controller/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	snapshot engine.Snapshot
}

func (f *fakeInspector) Snapshot() engine.Snapshot { return f.snapshot }

type fakeEvaluator struct {
	calls int
}

func (f *fakeEvaluator) ForceEvaluate() { f.calls++ }

func newTestServer() (*Server, *fakeInspector, *fakeEvaluator) {
	inspector := &fakeInspector{snapshot: engine.Snapshot{SelectedTarget: -1}}
	evaluator := &fakeEvaluator{}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s := NewServer(inspector, evaluator, logger)
	return s, inspector, evaluator
}

func TestServer_Dump_ReturnsSnapshot(t *testing.T) {
	s, inspector, _ := newTestServer()
	defer s.Close()
	inspector.snapshot.ValidationRetryCount = 2

	req := httptest.NewRequest(http.MethodGet, "/admin/v1/dump", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got engine.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.ValidationRetryCount)
}

func TestServer_ForceEvaluate_InvokesEvaluator(t *testing.T) {
	s, _, evaluator := newTestServer()
	defer s.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/v1/force-evaluate", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, evaluator.calls)
}

func TestServer_Metrics_Served(t *testing.T) {
	s, _, _ := newTestServer()
	defer s.Close()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
