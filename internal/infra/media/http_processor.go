// Package media forwards image jobs to the external AI service.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nexus/config"
	"nexus/internal/domain/service"

	"github.com/pkg/errors"
)

type httpProcessor struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPProcessor creates the processor. Without an endpoint every call fails permanently.
func NewHTTPProcessor(cfg *config.Config, logger *slog.Logger) service.MediaProcessor {
	timeout := 60 * time.Second
	endpoint := ""
	apiKey := ""
	if cfg.Media != nil {
		endpoint = strings.TrimRight(cfg.Media.Endpoint, "/")
		apiKey = cfg.Media.APIKey
		if cfg.Media.Timeout > 0 {
			timeout = cfg.Media.Timeout
		}
	}

	return &httpProcessor{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Process posts payload to {endpoint}/{operation}. 4xx answers are permanent, everything else is retryable.
func (p *httpProcessor) Process(ctx context.Context, operation string, payload json.RawMessage) error {
	if p.endpoint == "" {
		return errors.Wrap(service.ErrPermanentJobFailure, "media endpoint not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/"+operation, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create media request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "media request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		p.logger.DebugContext(ctx, "Media job accepted", slog.String("operation", operation))

		return nil
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError &&
		resp.StatusCode != http.StatusTooManyRequests:
		return errors.Wrapf(service.ErrPermanentJobFailure, "%s returned %s", operation, resp.Status)
	default:
		return errors.Errorf("%s returned %s", operation, resp.Status)
	}
}
