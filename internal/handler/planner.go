package handler

import (
	"context"
	"net/http"

	"github.com/osse101/GardenPlanner_Go/internal/logger"
	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

// CompareRequest is a batch of layouts to rank
type CompareRequest struct {
	Layouts []planner.Request `json:"layouts" validate:"required,min=1,dive"`
}

// NormalizeRequest carries a save code to rewrite in the current version
type NormalizeRequest struct {
	SaveCode string `json:"save_code" validate:"required,max=4096,savecode"`
}

// PlannerHandler serves the planner endpoints
type PlannerHandler struct {
	svc planner.Service
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(svc planner.Service) *PlannerHandler {
	return &PlannerHandler{svc: svc}
}

// Simulate handles POST /simulate
func (h *PlannerHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	handlePlannerAction(w, r, OpSimulate, h.svc.Simulate)
}

// Produce handles POST /produce
func (h *PlannerHandler) Produce(w http.ResponseWriter, r *http.Request) {
	handlePlannerAction(w, r, OpProduce, h.svc.Produce)
}

// Value handles POST /value
func (h *PlannerHandler) Value(w http.ResponseWriter, r *http.Request) {
	handlePlannerAction(w, r, OpValue, h.svc.Value)
}

// Compare handles POST /compare
func (h *PlannerHandler) Compare(w http.ResponseWriter, r *http.Request) {
	handlePlannerAction(w, r, OpCompare, func(ctx context.Context, req CompareRequest) (*planner.CompareReport, error) {
		rep, err := h.svc.Compare(ctx, req.Layouts)
		if err == nil {
			logger.FromContext(ctx).Info("Layouts compared", "layouts", len(req.Layouts), "best", rep.Best)
		}
		return rep, err
	})
}

// Normalize handles POST /layout/normalize
func (h *PlannerHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	handlePlannerAction(w, r, OpNormalize, func(ctx context.Context, req NormalizeRequest) (*planner.NormalizeReport, error) {
		return h.svc.Normalize(ctx, req.SaveCode)
	})
}
