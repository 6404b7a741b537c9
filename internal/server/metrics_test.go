package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m.HTTPRequestsTotal == nil || m.LayoutsTotal == nil || m.CacheRequestTotal == nil {
		t.Fatal("metrics not initialized")
	}
	if m.Registry() == nil {
		t.Error("registry not initialized")
	}
}

func TestMetricsHooks(t *testing.T) {
	m := NewMetrics()
	ctx := context.Background()

	m.OnLayoutStart(ctx, "tree", 12, 11)
	m.OnLayoutComplete(ctx, "tree", 12, 3*time.Millisecond, nil)
	m.OnLayoutComplete(ctx, "tree", 12, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.LayoutsTotal.WithLabelValues("tree", "ok")); got != 1 {
		t.Errorf("ok layouts = %v", got)
	}
	if got := testutil.ToFloat64(m.LayoutsTotal.WithLabelValues("tree", "error")); got != 1 {
		t.Errorf("failed layouts = %v", got)
	}

	m.OnCacheHit(ctx, "layout")
	m.OnCacheMiss(ctx, "layout")
	m.OnCacheMiss(ctx, "layout")
	m.OnCacheSet(ctx, "layout", 512)

	if got := testutil.ToFloat64(m.CacheRequestTotal.WithLabelValues("layout", "miss")); got != 2 {
		t.Errorf("misses = %v", got)
	}
	if got := testutil.ToFloat64(m.CacheWrittenBytes.WithLabelValues("layout")); got != 512 {
		t.Errorf("written bytes = %v", got)
	}

	m.OnRequest(ctx, "GET", "/healthz")
	if got := testutil.ToFloat64(m.HTTPRequestsInFlight); got != 1 {
		t.Errorf("in flight = %v", got)
	}
	m.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
	if got := testutil.ToFloat64(m.HTTPRequestsInFlight); got != 0 {
		t.Errorf("in flight after response = %v", got)
	}
}
