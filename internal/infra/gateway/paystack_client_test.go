package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"nexus/config"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/service"
	"nexus/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, baseURL string) service.PaymentGateway {
	t.Helper()

	cfg := &config.Config{
		Gateway: &config.GatewayConfig{
			BaseURL:       baseURL,
			Secret:        "sk_test",
			InitTimeout:   time.Second,
			VerifyTimeout: time.Second,
		},
		IPN: &config.IPNConfig{VerifyURL: baseURL + "/ipn"},
	}

	return NewPaymentGateway(cfg, metrics.NewWithRegistry(prometheus.NewRegistry()), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInitialize_Success(t *testing.T) {
	var got initializeBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"authorization_url":"https://pay/abc","reference":"NEXUS_ORD_X_ABCDEF"}}`))
	}))
	defer server.Close()

	gw := newTestGateway(t, server.URL)
	authURL, err := gw.Initialize(t.Context(), service.InitializeRequest{
		Email:       "c@example.com",
		AmountMinor: 1350,
		Currency:    "GHS",
		Reference:   "NEXUS_ORD_X_ABCDEF",
		CallbackURL: "http://cb",
		Metadata:    map[string]string{"order_id": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay/abc", authURL)
	assert.Equal(t, int64(1350), got.Amount)
	assert.Equal(t, "http://cb", got.CallbackURL)
	assert.Equal(t, "1", got.Metadata["order_id"])
}

func TestInitialize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success envelope",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
		{
			name: "deadline exceeded",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(1500 * time.Millisecond)
				_, _ = w.Write([]byte(`{"status":true}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := newTestGateway(t, server.URL).Initialize(t.Context(), service.InitializeRequest{Reference: "r"})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrGatewayUnavailable)
		})
	}
}

func TestVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/NEXUS_ORD_X_ABCDEF", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"success","reference":"NEXUS_ORD_X_ABCDEF","id":98765,"amount":1350,"currency":"ghs"}}`))
	}))
	defer server.Close()

	v, err := newTestGateway(t, server.URL).Verify(t.Context(), "NEXUS_ORD_X_ABCDEF")

	require.NoError(t, err)
	assert.True(t, v.IsSuccess())
	assert.Equal(t, "98765", v.GatewayTxnID)
	assert.Equal(t, int64(1350), v.AmountMinor)
	assert.Equal(t, "GHS", v.Currency)
}

func TestVerifyIPN(t *testing.T) {
	form := url.Values{
		"invoice":        {"NEXUS-20260101-ABCDEF"},
		"payment_status": {"Completed"},
		"receiver_email": {"payments@nexus.example"},
		"txn_id":         {"TX1"},
		"mc_gross":       {"13.50"},
		"mc_currency":    {"ghs"},
	}

	t.Run("verified", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "_notify-validate", r.PostForm.Get("cmd"))
			assert.Equal(t, "TX1", r.PostForm.Get("txn_id"))
			_, _ = w.Write([]byte("VERIFIED"))
		}))
		defer server.Close()

		msg, err := newTestGateway(t, server.URL).VerifyIPN(t.Context(), form)

		require.NoError(t, err)
		assert.Equal(t, "NEXUS-20260101-ABCDEF", msg.Invoice)
		assert.True(t, decimal.RequireFromString("13.50").Equal(msg.Gross))
		assert.Equal(t, "GHS", msg.Currency)
		assert.Equal(t, "Completed", msg.PaymentStatus)
	})

	t.Run("invalid", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("INVALID"))
		}))
		defer server.Close()

		_, err := newTestGateway(t, server.URL).VerifyIPN(t.Context(), form)

		assert.ErrorIs(t, err, ErrIPNNotVerified)
	})
}
