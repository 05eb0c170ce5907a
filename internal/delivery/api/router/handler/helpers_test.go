package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "nexus/internal/delivery/api/middleware"
	"nexus/internal/delivery/api/validator"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response body for assertions.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"meta"`
}

type testRoute struct {
	method    string
	path      string
	handler   echo.HandlerFunc
	principal *deliverycontext.Principal
}

func customer(userID uuid.UUID) *deliverycontext.Principal {
	return &deliverycontext.Principal{UserID: userID, Roles: entity.Roles{entity.RoleCustomer}}
}

func withRoles(userID uuid.UUID, roles ...entity.Role) *deliverycontext.Principal {
	return &deliverycontext.Principal{UserID: userID, Roles: roles}
}

// serve runs one request through an echo instance configured like the API server.
func serve(t *testing.T, route testRoute, method, target, body string, contentType ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	var mws []echo.MiddlewareFunc
	if route.principal != nil {
		principal := *route.principal
		mws = append(mws, func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetPrincipal(c, principal)

				return next(c)
			}
		})
	}
	e.Add(route.method, route.path, route.handler, mws...)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ct := echo.MIMEApplicationJSON
	if len(contentType) > 0 {
		ct = contentType[0]
	}
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))

	return out
}
