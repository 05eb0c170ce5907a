package handler

import (
	"net/http"
	"strconv"

	"nexus/internal/delivery/api/response"
	deliverycontext "nexus/internal/delivery/context"
	domainerrors "nexus/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HealthCheck answers liveness checks.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// WhoAmI echoes the authenticated caller.
func WhoAmI(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": principal.UserID,
		"roles":   principal.Roles.ToStrings(),
	})
}

// callerID returns the authenticated user. Routes behind Authenticate always have one.
func callerID(c echo.Context) (uuid.UUID, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	return principal.UserID, nil
}

func paramID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(req)
}

// page reads limit and offset query parameters, clamped to sane bounds.
func page(c echo.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	offset, err = strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
