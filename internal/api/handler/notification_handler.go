package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// NotificationLog is the read-only view the handler needs from the
// dispatcher.
type NotificationLog interface {
	Notifications() []domain.Notification
}

// NotificationHandler exposes the dispatcher's in-memory outbound log to
// officials.
type NotificationHandler struct {
	log NotificationLog
}

func NewNotificationHandler(log NotificationLog) *NotificationHandler {
	return &NotificationHandler{log: log}
}

type listNotificationsResponse struct {
	Data  []domain.Notification `json:"data"`
	Total int                   `json:"total"`
}

// List handles GET /v1/notifications (officials only).
//
// @Summary      List recorded notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listNotificationsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications := h.log.Notifications()
	return c.JSON(http.StatusOK, listNotificationsResponse{
		Data:  notifications,
		Total: len(notifications),
	})
}
