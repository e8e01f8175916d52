package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so an encode failure can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgDivergedError      = "The simulation did not settle within the day limit. Try a shorter horizon."
	ErrMsgCorruptStateError  = "The simulation reached an inconsistent state."
	ErrMsgCancelledError     = "Request cancelled before the plan finished."
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP responses.
// Input problems carry their own message since it names the bad field or code;
// run failures get a fixed message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrCorruptState):
		return http.StatusInternalServerError, ErrMsgCorruptStateError
	case errors.Is(err, domain.ErrSimulationDivergence):
		return http.StatusUnprocessableEntity, ErrMsgDivergedError
	case errors.Is(err, domain.ErrInvalidSaveFormat),
		errors.Is(err, domain.ErrInvalidPlacement),
		errors.Is(err, domain.ErrUnknownCrop),
		errors.Is(err, domain.ErrUnknownFertiliser),
		errors.Is(err, domain.ErrCrafterCapReached),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgCancelledError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
