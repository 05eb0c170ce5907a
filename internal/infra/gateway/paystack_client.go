// Package gateway talks to the external escrow payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nexus/config"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	opInitialize = "initialize"
	opVerify     = "verify"
	opIPN        = "ipn_validate"

	ipnVerified = "VERIFIED"
)

// ErrIPNNotVerified is returned when the gateway does not confirm an IPN postback.
var ErrIPNNotVerified = errors.New("ipn not verified by gateway")

type client struct {
	baseURL       string
	secret        string
	ipnVerifyURL  string
	initTimeout   time.Duration
	verifyTimeout time.Duration
	httpClient    *http.Client
	metrics       service.MetricsRecorder
	logger        *slog.Logger
}

// NewPaymentGateway creates the gateway client from configuration.
func NewPaymentGateway(cfg *config.Config, metrics service.MetricsRecorder, logger *slog.Logger) service.PaymentGateway {
	return &client{
		baseURL:       strings.TrimRight(cfg.Gateway.BaseURL, "/"),
		secret:        cfg.Gateway.Secret,
		ipnVerifyURL:  cfg.IPN.VerifyURL,
		initTimeout:   cfg.Gateway.InitTimeout,
		verifyTimeout: cfg.Gateway.VerifyTimeout,
		httpClient:    &http.Client{},
		metrics:       metrics,
		logger:        logger,
	}
}

type initializeBody struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		ID        int64  `json:"id"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

// Initialize starts a transaction. Any transport failure or non-success envelope is GATEWAY_UNAVAILABLE.
func (c *client) Initialize(ctx context.Context, req service.InitializeRequest) (authorizationURL string, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.initTimeout)
	defer cancel()

	start := time.Now()
	defer func() { c.observe(opInitialize, err, start) }()

	body, err := json.Marshal(initializeBody{
		Email:       req.Email,
		Amount:      req.AmountMinor,
		Currency:    req.Currency,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal initialize request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create initialize request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp initializeResponse
	if err := c.do(httpReq, &resp); err != nil {
		return "", err
	}
	if !resp.Status || resp.Data.AuthorizationURL == "" {
		return "", domainerrors.ErrGatewayUnavailable.WithDetails(resp.Message)
	}

	return resp.Data.AuthorizationURL, nil
}

// Verify fetches the transaction state for reference.
func (c *client) Verify(ctx context.Context, reference string) (verification *service.Verification, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.verifyTimeout)
	defer cancel()

	start := time.Now()
	defer func() { c.observe(opVerify, err, start) }()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create verify request")
	}

	var resp verifyResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, domainerrors.ErrGatewayUnavailable.WithDetails(resp.Message)
	}

	txnID := ""
	if resp.Data.ID != 0 {
		txnID = strconv.FormatInt(resp.Data.ID, 10)
	}

	return &service.Verification{
		Status:       resp.Data.Status,
		Reference:    resp.Data.Reference,
		GatewayTxnID: txnID,
		AmountMinor:  resp.Data.Amount,
		Currency:     strings.ToUpper(resp.Data.Currency),
	}, nil
}

// VerifyIPN posts the form back with cmd=_notify-validate and parses it once the gateway answers VERIFIED.
func (c *client) VerifyIPN(ctx context.Context, form url.Values) (msg *service.IPNMessage, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.verifyTimeout)
	defer cancel()

	start := time.Now()
	defer func() { c.observe(opIPN, err, start) }()

	postback := url.Values{"cmd": {"_notify-validate"}}
	for key, values := range form {
		if key == "cmd" {
			continue
		}
		postback[key] = values
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ipnVerifyURL, strings.NewReader(postback.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ipn postback")
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return nil, domainerrors.ErrGatewayUnavailable.WrapMessage(err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.ErrGatewayUnavailable.WithDetails(resp.Status)
	}
	if strings.TrimSpace(string(raw)) != ipnVerified {
		return nil, errors.Wrapf(ErrIPNNotVerified, "gateway answered %q", strings.TrimSpace(string(raw)))
	}

	return parseIPN(form)
}

func parseIPN(form url.Values) (*service.IPNMessage, error) {
	gross, err := decimal.NewFromString(strings.TrimSpace(form.Get("mc_gross")))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid mc_gross")
	}

	return &service.IPNMessage{
		Invoice:       strings.TrimSpace(form.Get("invoice")),
		PaymentStatus: form.Get("payment_status"),
		ReceiverEmail: strings.TrimSpace(form.Get("receiver_email")),
		TxnID:         strings.TrimSpace(form.Get("txn_id")),
		Gross:         gross,
		Currency:      strings.ToUpper(strings.TrimSpace(form.Get("mc_currency"))),
	}, nil
}

func (c *client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrGatewayUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return domainerrors.ErrGatewayUnavailable.WithDetails(resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrGatewayUnavailable.WrapMessage("malformed gateway response: " + err.Error())
	}

	return nil
}

func (c *client) observe(operation string, err error, start time.Time) {
	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeError
		c.logger.Warn("Gateway call failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
	c.metrics.GatewayCall(operation, outcome, time.Since(start))
}
