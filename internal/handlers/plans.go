// Package handlers provides HTTP handlers for the credit plan engine.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"credit-plan-engine/internal/models"
	"credit-plan-engine/internal/services/credits"
	"credit-plan-engine/internal/utils"
)

// PlanHandler serves plan previews and credit submissions.
type PlanHandler struct {
	svc *credits.Service
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(svc *credits.Service) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// Preview handles POST /api/plans/preview. The UI calls this on every
// field change, so it must stay cheap and side-effect free.
func (h *PlanHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   decodeError(err),
		})
		return
	}

	result, err := h.svc.Preview(r.Context(), &req)
	if err != nil {
		writeJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// SubmitCredit handles POST /api/credits.
func (h *PlanHandler) SubmitCredit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreditCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   decodeError(err),
		})
		return
	}

	credit, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		utils.GetLogger().Error("credit submission failed", zap.Error(err))
		writeJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Credit created",
		Data:    credit,
	})
}

// ListCredits handles GET /api/credits.
func (h *PlanHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	list, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		utils.GetLogger().Error("failed to list credits", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch credits",
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    list,
	})
}

// statusFor maps engine errors to HTTP statuses: structurally invalid
// input is the caller's fault, everything else is ours.
func statusFor(err error) int {
	if errors.Is(err, models.ErrInvalidPlanRequest) || errors.Is(err, models.ErrInvalidAmount) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decodeError(err error) string {
	if errors.Is(err, models.ErrInvalidAmount) || errors.Is(err, utils.ErrInvalidDate) {
		return err.Error()
	}
	return "Invalid request body"
}
