package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nexus/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirebaseService_WithoutCredentialsLogsOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewFirebaseService(context.Background(), &config.Config{Firebase: &config.FirebaseConfig{}}, logger)
	require.NoError(t, err)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "title", "body", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Equal(t, 0, failure)
	assert.Empty(t, invalid)
}

func TestLogOnlyService_RejectsOversizedBatch(t *testing.T) {
	svc := &logOnlyService{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	_, _, _, err := svc.SendBatchNotification(context.Background(), make([]string, MaxBatchSize+1), "t", "b", nil)
	assert.Error(t, err)
}
