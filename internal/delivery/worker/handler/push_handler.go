// Package handler holds the worker's transport handlers.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"nexus/config"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/service"
	"nexus/internal/infra/pubsub"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token. idtoken.Validate in production.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs jobs announced by Pub/Sub push requests
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       TokenValidator
	runner         usecase.JobRunner
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Runner usecase.JobRunner
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests; local development posts unsigned envelopes.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.Audience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		runner:         params.Runner,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// A non-2xx answer makes Pub/Sub redeliver, so only transient failures return 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := pushMsg.DecodeJobMessage()
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode job message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	jobID, err := uuid.Parse(msg.JobID)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Job message without a valid job id", slog.String("job_id", msg.JobID))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := WithJobTrace(ctx, h.logger, msg)

	if err := h.runner.Process(ctx, jobID); err != nil {
		reqLogger.ErrorContext(ctx, "[Worker] Failed to process job",
			slog.String("job_id", msg.JobID),
			slog.String("job_name", msg.Name),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// WithJobTrace carries the publisher's request id into the job context.
// Priority: message > existing context (X-Request-Id) > new id.
func WithJobTrace(ctx context.Context, logger *slog.Logger, msg *service.JobMessage) (context.Context, *slog.Logger) {
	requestID := msg.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	reqLogger := logger.With(slog.String("request_id", requestID), slog.String("job_id", msg.JobID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// verifyPubSubToken verifies the JWT Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	// Without a configured audience, expect the push endpoint URL.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
