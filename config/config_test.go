package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"marketplace": map[string]any{
			"minPayoutAmount":        "10.00",
			"providerCommissionRate": "0.10",
		},
		"rabbitmq": map[string]any{
			"prefetchCount": 10,
			"deadLetter":    "nexus.jobs.dlq",
		},
		"jobs": map[string]any{
			"sweepInterval": "1m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := map[string]string{
		"MARKETPLACE_MINPAYOUTAMOUNT":        "marketplace.minPayoutAmount",
		"MARKETPLACE_PROVIDERCOMMISSIONRATE": "marketplace.providerCommissionRate",
		"RABBITMQ_PREFETCHCOUNT":             "rabbitmq.prefetchCount",
		"RABBITMQ_DEADLETTER":                "rabbitmq.deadLetter",
		"JOBS_SWEEPINTERVAL":                 "jobs.sweepInterval",
		"SECRETKEY_ACCESS":                   "secretKey.access",
		"GATEWAY_SECRET":                     "gateway.secret",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

func TestDecimalHookFunc(t *testing.T) {
	hook := decimalHookFunc()
	to := reflect.TypeOf(decimal.Decimal{})

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"quoted yaml", " 0.20 ", "0.2"},
		{"empty env", "", "0"},
		{"int", 10, "10"},
		{"float", 2.5, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := hook(reflect.TypeOf(tt.in), to, tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.(decimal.Decimal).String())
		})
	}

	t.Run("other targets are untouched", func(t *testing.T) {
		out, err := hook(reflect.TypeOf(""), reflect.TypeOf(""), "1m")

		require.NoError(t, err)
		assert.Equal(t, "1m", out)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := hook(reflect.TypeOf(""), to, "ten")

		assert.Error(t, err)
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Jobs: &JobsConfig{MaxAttempts: 8}}

	applyDefaults(cfg)

	assert.Equal(t, 8, cfg.Jobs.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Jobs.SweepInterval)
	assert.Equal(t, 15*time.Minute, cfg.Jobs.Lease)
	assert.Equal(t, 5*time.Second, cfg.Gateway.InitTimeout)
	assert.Equal(t, "public_id", cfg.IPN.InvoiceField)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Marketplace)
}
