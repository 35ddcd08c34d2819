package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/services"
)

// ListNotifications returns the authenticated user's notifications. An
// explicit user_id query is honored so coordinators can inspect others'.
func ListNotifications(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			userID = c.GetString("user_id")
		}

		filter := services.NotificationFilter{
			UserID:     userID,
			Type:       c.Query("type"),
			UnreadOnly: queryBool(c, "unread_only"),
		}

		notifications, err := svc.NotificationService().List(c.Request.Context(), filter)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		respondOK(c, http.StatusOK, notifications)
	}
}

// MarkNotificationRead marks a notification as read
func MarkNotificationRead(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		notification, err := services.NotificationService().MarkRead(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, notification)
	}
}
