package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/api/models"
	"election-monitor/internal/httpclient"
	"election-monitor/internal/mockdata"
	"election-monitor/internal/services"
)

// respondOK writes the standard success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.BaseResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().Unix(),
		RequestID: c.GetString("request_id"),
	})
}

// respondError writes the standard error envelope
func respondError(c *gin.Context, status int, code, message, details string) {
	c.JSON(status, models.BaseResponse{
		Success: false,
		Error: &models.ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().Unix(),
		RequestID: c.GetString("request_id"),
	})
}

// handleServiceError maps service failures onto HTTP statuses. Missing
// records become 404, validation failures 400, classified upstream errors
// keep their status, anything else is a 500.
func handleServiceError(c *gin.Context, svc interfaces.Services, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, models.ErrCodeNotFound, notFound.Error(), "")
		return
	}

	if errors.Is(err, services.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, err.Error(), "")
		return
	}

	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		respondError(c, status, models.ErrCodeUpstreamFailure, "Upstream request failed", apiErr.Message)
		return
	}

	svc.GetLogger().Error("Unhandled service error", "error", err.Error(), "path", c.FullPath())
	respondError(c, http.StatusInternalServerError, models.ErrCodeInternalError, "Internal server error", "")
}

// bindJSON binds the request body and writes the 400 itself on failure
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// queryTime parses an RFC3339 query parameter, nil when absent
func queryTime(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}

// queryInt parses an integer query parameter with a fallback
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// queryIntPtr parses an integer query parameter, nil when absent
func queryIntPtr(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// queryBool parses a boolean query parameter, false when absent
func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

// queryBoolPtr parses a boolean query parameter, nil when absent
func queryBoolPtr(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// recordAudit appends an audit entry for the acting user. Failures are
// logged and swallowed so they never fail the request itself.
func recordAudit(c *gin.Context, svc interfaces.Services, action, resource, details string) {
	entry := mockdata.AuditLog{
		UserID:    c.GetString("user_id"),
		Action:    action,
		Resource:  resource,
		Details:   details,
		IPAddress: c.ClientIP(),
		CreatedAt: time.Now(),
	}

	if err := svc.AuditService().Record(c.Request.Context(), entry); err != nil {
		svc.GetLogger().Warning("Failed to record audit entry", "action", action, "error", err.Error())
	}
}
