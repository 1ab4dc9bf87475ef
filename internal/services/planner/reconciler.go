package planner

import (
	"fmt"

	"credit-plan-engine/internal/models"
)

// EnsureID assigns a deterministic identifier to an installment that lacks
// one, derived from its number and due date. The id exists for UI row
// correlation only; it is never an ordering or financial key.
func EnsureID(ins models.Installment) models.Installment {
	if ins.ID == "" {
		ins.ID = fmt.Sprintf("ins-%d-%s", ins.Number, ins.DueDate.UTC().Format("2006-01-02"))
	}
	return ins
}

// ResolveSubmission produces the final, submission-ready installment list.
//
// When the operator has opted into manual mode and supplied a non-empty
// schedule, that schedule is trusted verbatim: no re-validation of amounts
// or totals happens here, only missing ids are filled in. Otherwise the
// plan is recomputed from the request.
func ResolveSubmission(isManual bool, override []models.Installment, req *models.PlanRequest) ([]models.Installment, error) {
	if isManual && len(override) > 0 {
		return ensureIDs(override), nil
	}

	result, err := BuildPlan(req)
	if err != nil {
		return nil, err
	}
	return ensureIDs(result.Installments), nil
}

func ensureIDs(installments []models.Installment) []models.Installment {
	out := make([]models.Installment, len(installments))
	for i, ins := range installments {
		out[i] = EnsureID(ins)
	}
	return out
}
