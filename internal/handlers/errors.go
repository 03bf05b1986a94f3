package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to an HTTP status and a client-safe message.
func statusFor(err error, fallbackMsg string) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidTransfer):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "Resource already exists"
	case errors.Is(err, apperrors.ErrAIGeneration):
		return http.StatusServiceUnavailable, "AI service is unavailable, please try again later"
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service is shutting down, please try again later"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timed out"
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Status > 0 && appErr.Status < http.StatusInternalServerError {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, fallbackMsg
}

// respondError writes the mapped error. Server-side failures are logged at error level.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, msg := statusFor(err, fallbackMsg)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": msg})
}

// requireUser returns the authenticated user id or writes 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// bindError writes 400 for a request body or query that failed binding.
func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
