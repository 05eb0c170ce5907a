package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.OrderPlaced("escrow")
	m.OrderPlaced("")
	m.OrderTransition("PENDING", "AWAITING_ESCROW_PAYMENT")
	m.PaymentReconciled("success")
	m.PaymentReconciled("success")
	m.DispatchAttempt("no_rider")
	m.JobFinished("notification.push", "retry")
	m.PayoutRequested("rider")

	assert.InDelta(t, 1, testutil.ToFloat64(m.ordersPlaced.WithLabelValues("escrow")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ordersPlaced.WithLabelValues("none")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.orderTransitions.WithLabelValues("PENDING", "AWAITING_ESCROW_PAYMENT")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.paymentReconciled.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.dispatchAttempts.WithLabelValues("no_rider")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.jobsFinished.WithLabelValues("notification.push", "retry")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.payoutRequests.WithLabelValues("rider")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())
	m.GatewayCall("initialize", "success", 120*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/health", "200", 3*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nexus_gateway_calls_total{operation="initialize",outcome="success"} 1`)
	assert.Contains(t, string(body), `nexus_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
