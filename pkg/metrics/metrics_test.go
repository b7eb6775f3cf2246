package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestNotifierCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.NotifierAttempts.WithLabelValues("status"))
	metrics.NotifierAttempts.WithLabelValues("status").Inc()
	metrics.NotifierAttempts.WithLabelValues("status").Inc()

	if got := testutil.ToFloat64(metrics.NotifierAttempts.WithLabelValues("status")); got != before+2 {
		t.Fatalf("NotifierAttempts(status): got=%v want=%v", got, before+2)
	}
}

func TestHTTPCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.HTTPCacheOps.WithLabelValues("/api/products", "hit"))
	missBefore := testutil.ToFloat64(metrics.HTTPCacheOps.WithLabelValues("/api/products", "miss"))

	metrics.HTTPCacheOps.WithLabelValues("/api/products", "hit").Inc()

	if got := testutil.ToFloat64(metrics.HTTPCacheOps.WithLabelValues("/api/products", "hit")); got != hitBefore+1 {
		t.Fatalf("HTTPCacheOps(hit): got=%v want=%v", got, hitBefore+1)
	}
	if got := testutil.ToFloat64(metrics.HTTPCacheOps.WithLabelValues("/api/products", "miss")); got != missBefore {
		t.Fatalf("HTTPCacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestDispatchQueueDepth_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.DispatchQueueDepth)

	metrics.DispatchQueueDepth.Set(cur + 3)
	if got := testutil.ToFloat64(metrics.DispatchQueueDepth); got != cur+3 {
		t.Fatalf("DispatchQueueDepth after +3: got=%v want=%v", got, cur+3)
	}

	metrics.DispatchQueueDepth.Set(cur) // вернуть как было
}
