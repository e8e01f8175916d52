package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/GardenPlanner_Go/internal/logger"
)

// ValidationErrorResponse lists the request fields that failed their
// validate tags, keyed by JSON field path
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodePlannerRequest reads one JSON plan, options or batch body into dst and
// checks its validate tags. A non-nil error means the 400 has been written.
func decodePlannerRequest(w http.ResponseWriter, r *http.Request, dst any, op string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Warn("Undecodable planner request", "op", op, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(dst); err != nil {
		fields := FormatValidationError(err)
		log.Debug("Planner request rejected", "op", op, "fields", len(fields))
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: fields,
		})
		return err
	}
	return nil
}

// queryParam returns a required query parameter, answering 400 when it is
// missing or empty
func queryParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		logger.FromContext(r.Context()).Debug("Missing query parameter", "param", name)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return "", false
	}
	return value, true
}

// handlePlannerAction runs one planner operation: decode and validate REQ,
// call action with the request context, map service errors to a status and
// write RES as JSON.
func handlePlannerAction[REQ any, RES any](
	w http.ResponseWriter,
	r *http.Request,
	op string,
	action func(context.Context, REQ) (RES, error),
) {
	var req REQ
	if err := decodePlannerRequest(w, r, &req, op); err != nil {
		return
	}

	res, err := action(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
