package handler

import (
	"net/http"
	"strconv"

	"nexus/internal/delivery/api/response"
	"nexus/internal/usecase"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// List handles GET /notifications?unread=true
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	limit, offset := page(c)
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))

	notifications, err := h.notificationUC.List(c.Request().Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, notifications, limit, offset)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
