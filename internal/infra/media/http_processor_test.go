package media

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus/config"
	"nexus/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProcessor_Process(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantErr       bool
		wantPermanent bool
	}{
		{name: "accepted", status: http.StatusAccepted},
		{name: "bad request is permanent", status: http.StatusBadRequest, wantErr: true, wantPermanent: true},
		{name: "rate limited is retryable", status: http.StatusTooManyRequests, wantErr: true},
		{name: "server error is retryable", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/remove-background", r.URL.Path)
				assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			p := NewHTTPProcessor(&config.Config{Media: &config.MediaConfig{Endpoint: server.URL + "/", APIKey: "key"}},
				slog.New(slog.NewTextHandler(io.Discard, nil)))

			err := p.Process(t.Context(), "remove-background", json.RawMessage(`{"image_url":"x"}`))
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantPermanent, errors.Is(err, service.ErrPermanentJobFailure))
		})
	}
}

func TestHTTPProcessor_NotConfigured(t *testing.T) {
	p := NewHTTPProcessor(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := p.Process(t.Context(), "enhance", nil)

	assert.ErrorIs(t, err, service.ErrPermanentJobFailure)
}
