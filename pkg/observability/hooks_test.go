package observability

import (
	"context"
	"testing"
	"time"

	"github.com/wqcharts/bizchart/pkg/geom"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Chart hooks
	ch := NoopChartHooks{}
	ch.OnLayout(3, geom.Size{Width: 100, Height: 49}, time.Millisecond)
	ch.OnLayoutSkipped()
	ch.OnDraw(3, 2, time.Millisecond)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/chart.svg")
	h.OnResponse(ctx, "GET", "/chart.svg", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Chart().(NoopChartHooks); !ok {
		t.Error("Chart() should return NoopChartHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customChart := &testChartHooks{}
	SetChartHooks(customChart)
	if Chart() != customChart {
		t.Error("SetChartHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Chart().(NoopChartHooks); !ok {
		t.Error("Reset() should restore NoopChartHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testChartHooks{}
	SetChartHooks(custom)

	// Setting nil should be ignored
	SetChartHooks(nil)

	if Chart() != custom {
		t.Error("SetChartHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testChartHooks struct{ NoopChartHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
