package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/layout"
	"github.com/matzehuels/linkchart/pkg/observability"
	"github.com/matzehuels/linkchart/pkg/pipeline"
)

const chartBody = `{
  "graph": {
    "items": [{"id": "hub"}, {"id": 1}, {"id": 2}, {"id": "far"}],
    "links": [{"from": "hub", "to": 1}, {"from": "hub", "to": 2}]
  },
  "layout": "peacock",
  "width": 1000,
  "height": 800
}`

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(Options{
		Runner: pipeline.NewRunner(nil, nil, logger),
		Logger: logger,
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, err := uuid.Parse(resp.Header.Get(HeaderRequestID)); err != nil {
		t.Errorf("X-Request-ID = %q is not a UUID", resp.Header.Get(HeaderRequestID))
	}
	body := decodeBody[map[string]string](t, resp)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRequestIDEcho(t *testing.T) {
	_, ts := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(HeaderRequestID, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get(HeaderRequestID); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}

	req.Header.Set(HeaderRequestID, "not-a-uuid")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if got := resp2.Header.Get(HeaderRequestID); got == "not-a-uuid" {
		t.Error("invalid request id was echoed")
	}
}

func TestNotFound(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body := decodeBody[errorBody](t, resp); body.Error.Code != lcerrors.ErrCodeNotFound {
		t.Errorf("code = %q", body.Error.Code)
	}
}

func TestLayouts(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/layouts")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body := decodeBody[layoutsResponse](t, resp)
	if len(body.Layouts) != len(layout.Names()) || body.Default != layout.DefaultName {
		t.Errorf("body = %+v", body)
	}
}

func TestLayout(t *testing.T) {
	_, ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/layout", chartBody)
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d: %s", resp.StatusCode, b)
	}

	body := decodeBody[layoutResponse](t, resp)
	if body.Layout != layout.NamePeacock {
		t.Errorf("layout = %q", body.Layout)
	}
	if len(body.Positions) != 4 {
		t.Fatalf("got %d positions", len(body.Positions))
	}
	if body.Positions["hub"] != (layout.Position{}) {
		t.Errorf("hub = %v, want origin", body.Positions["hub"])
	}
	if _, ok := body.Positions["1"]; !ok {
		t.Error("numeric id 1 missing from positions")
	}
	if body.Transform == nil || body.Transform.Zoom <= 0 {
		t.Errorf("transform = %+v", body.Transform)
	}
	if body.RunID == "" || body.GraphHash == "" {
		t.Errorf("run_id = %q, graph_hash = %q", body.RunID, body.GraphHash)
	}
}

func TestLayoutPartialConfig(t *testing.T) {
	_, ts := newTestServer(t)
	body := `{"graph": {"items": [{"id": "a"}, {"id": "b"}]}, "layout": "grid", "config": {"node_spacing_x": 440}}`
	resp := post(t, ts.URL+"/v1/layout", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	got := decodeBody[layoutResponse](t, resp)
	if got.Positions["a"].X != -220 || got.Positions["b"].X != 220 {
		t.Errorf("positions = %v", got.Positions)
	}
}

func TestLayoutUnknownNameFallsBack(t *testing.T) {
	_, ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/layout", `{"graph": {"items": [{"id": "a"}]}, "layout": "spiral"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := decodeBody[layoutResponse](t, resp); got.Layout != layout.DefaultName {
		t.Errorf("layout = %q, want %q", got.Layout, layout.DefaultName)
	}
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   lcerrors.Code
	}{
		{"Malformed", `{"graph": `, http.StatusBadRequest, lcerrors.ErrCodeInvalidFormat},
		{"UnknownField", `{"graph": {}, "colour": "red"}`, http.StatusBadRequest, lcerrors.ErrCodeInvalidFormat},
		{"BadConfig", `{"graph": {}, "config": {"node_width": -1}}`, http.StatusBadRequest, lcerrors.ErrCodeInvalidConfig},
		{"EmptyID", `{"graph": {"items": [{"id": ""}]}}`, http.StatusBadRequest, lcerrors.ErrCodeInvalidInput},
		{"NegativeViewport", `{"graph": {}, "width": -5}`, http.StatusBadRequest, lcerrors.ErrCodeInvalidInput},
	}

	_, ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/v1/layout", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body := decodeBody[errorBody](t, resp)
			if body.Error.Code != tt.code {
				t.Errorf("code = %q, want %q (%s)", body.Error.Code, tt.code, body.Error.Message)
			}
			if body.Error.RequestID == "" {
				t.Error("error body missing request_id")
			}
		})
	}
}

func TestLayoutBodyTooLarge(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(Options{Logger: logger, MaxBodyBytes: 64})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp := post(t, ts.URL+"/v1/layout", chartBody)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFit(t *testing.T) {
	_, ts := newTestServer(t)
	resp := post(t, ts.URL+"/v1/fit", `{"positions": {"a": {"x": 0, "y": 0}}, "width": 1000, "height": 1000}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	got := decodeBody[layout.Transform](t, resp)
	if got.Zoom != 1.5 || got.PanX != 380 || got.PanY != 440 {
		t.Errorf("transform = %+v", got)
	}

	bad := post(t, ts.URL+"/v1/fit", `{"positions": {}, "width": 0, "height": 10}`)
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("zero width status = %d, want 400", bad.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(Options{Logger: log.NewWithOptions(io.Discard, log.Options{})})
	s.metrics.Register()
	defer observability.Reset()
	h := s.Handler()

	// Served in-process so the response hooks have run before the asserts.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/layout", strings.NewReader(chartBody)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	if got := testutil.ToFloat64(s.metrics.LayoutsTotal.WithLabelValues(layout.NamePeacock, "ok")); got != 1 {
		t.Errorf("layouts_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.metrics.HTTPRequestsTotal.WithLabelValues("POST", "/v1/layout", "200")); got != 1 {
		t.Errorf("http_requests_total = %v, want 1", got)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	for _, want := range []string{"linkchart_layouts_total", "linkchart_http_request_duration_seconds", "go_goroutines"} {
		if !bytes.Contains(rec.Body.Bytes(), []byte(want)) {
			t.Errorf("/metrics missing %s", want)
		}
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(Options{Logger: logger})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
