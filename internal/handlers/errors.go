package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/smart_converter/internal/apperrors"
	"github.com/SscSPs/smart_converter/internal/core/services"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConversion), errors.Is(err, apperrors.ErrUnsupportedPair):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrRatesUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the client-facing text for err. Internal errors are not echoed.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrConversion):
		return services.ConversionMessage(err)
	case errors.Is(err, apperrors.ErrRatesUnavailable):
		return "Exchange rates are currently unavailable"
	case statusForError(err) == http.StatusInternalServerError:
		return "Internal server error"
	default:
		return err.Error()
	}
}

// respondError logs err at a level matching its status and writes a JSON error body.
func respondError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": errorMessage(err)})
}
