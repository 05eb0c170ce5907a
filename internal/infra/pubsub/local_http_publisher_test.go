package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMessage_RoundTrip(t *testing.T) {
	msg := &service.JobMessage{RequestID: "req-1", JobID: "job-1", Name: "notification.push", Attempt: 2}

	pushMsg, err := NewPushMessage(msg, "projects/local/subscriptions/jobs-sub")
	require.NoError(t, err)
	assert.Equal(t, "job-1", pushMsg.Message.Attributes["job_id"])
	assert.Equal(t, "req-1", pushMsg.Message.Attributes["request_id"])

	decoded, err := pushMsg.DecodeJobMessage()
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestPushMessage_DecodeInvalidData(t *testing.T) {
	pushMsg := &PushMessage{}
	pushMsg.Message.Data = "%%%not-base64"

	_, err := pushMsg.DecodeJobMessage()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_PublishJob(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishJob(context.Background(), &service.JobMessage{RequestID: "req-9", JobID: "job-9", Name: "dispatch.assign_pending"})
	require.NoError(t, err)

	assert.Equal(t, "req-9", requestID)
	decoded, err := received.DecodeJobMessage()
	require.NoError(t, err)
	assert.Equal(t, "job-9", decoded.JobID)
	assert.Equal(t, "dispatch.assign_pending", decoded.Name)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishJob(context.Background(), &service.JobMessage{JobID: "job-1", Name: "notification.push"})
	assert.Error(t, err)
}
