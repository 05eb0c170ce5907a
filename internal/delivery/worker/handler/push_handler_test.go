package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nexus/config"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/service"
	"nexus/internal/infra/pubsub"
	mockUsecase "nexus/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider string) (*PushHandler, *mockUsecase.MockJobRunner) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider, Audience: "https://worker.example/push"}}
	cfg.Env.Env = constants.EnvProduction
	runner := mockUsecase.NewMockJobRunner(t)

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Runner: runner,
	}), runner
}

func pushBody(t *testing.T, msg *service.JobMessage) string {
	t.Helper()

	envelope, err := pubsub.NewPushMessage(msg, "projects/p/subscriptions/jobs")
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body, bearer string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	jobID := uuid.New()
	msg := &service.JobMessage{RequestID: "req-1", JobID: jobID.String(), Name: constants.JobNotificationPush, Attempt: 1}

	t.Run("processed", func(t *testing.T) {
		h, runner := newTestPushHandler(t, constants.PubSubProviderLocal)
		runner.EXPECT().
			Process(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "req-1"
			}), jobID).
			Return(nil).
			Once()

		rec := push(h, pushBody(t, msg), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("infra failure asks for redelivery", func(t *testing.T) {
		h, runner := newTestPushHandler(t, constants.PubSubProviderLocal)
		runner.EXPECT().Process(mock.Anything, jobID).Return(errors.New("db down")).Once()

		rec := push(h, pushBody(t, msg), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("bad job id is dropped", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

		rec := push(h, pushBody(t, &service.JobMessage{JobID: "not-a-uuid"}), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

		rec := push(h, `{"message":{"data":"%%%"}}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_GoogleAuth(t *testing.T) {
	jobID := uuid.New()
	msg := &service.JobMessage{JobID: jobID.String(), Name: constants.JobNotificationPush}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)

		rec := push(h, pushBody(t, msg), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := push(h, pushBody(t, msg), "token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, runner := newTestPushHandler(t, constants.PubSubProviderGoogle)
		var audience string
		h.validate = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		runner.EXPECT().Process(mock.Anything, jobID).Return(nil).Once()

		rec := push(h, pushBody(t, msg), "token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.example/push", audience)
	})
}

func TestWithJobTrace_FallsBackToContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")

	ctx, reqLogger := WithJobTrace(ctx, logger, &service.JobMessage{JobID: "j"})

	assert.Equal(t, "from-header", deliverycontext.GetRequestIDFromContext(ctx))
	assert.Same(t, reqLogger, deliverycontext.GetLogger(ctx))
}
