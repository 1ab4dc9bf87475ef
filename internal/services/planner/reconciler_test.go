package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-plan-engine/internal/models"
	"credit-plan-engine/internal/services/planner"
)

func TestEnsureID_Deterministic(t *testing.T) {
	ins := models.Installment{
		Number:  2,
		DueDate: models.NewISODate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		Amount:  400.00,
		Label:   models.LabelRegular,
	}

	first := planner.EnsureID(ins)
	second := planner.EnsureID(ins)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, first.ID, second.ID)

	// A different row gets a different id.
	other := ins
	other.Number = 3
	assert.NotEqual(t, first.ID, planner.EnsureID(other).ID)
}

func TestEnsureID_PreservesExisting(t *testing.T) {
	ins := models.Installment{
		Number:  1,
		DueDate: models.NewISODate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		Amount:  100.00,
		ID:      "row-from-ui",
	}

	assert.Equal(t, "row-from-ui", planner.EnsureID(ins).ID)
}

func TestResolveSubmission_ManualPassthrough(t *testing.T) {
	override := []models.Installment{
		{Number: 1, DueDate: models.NewISODate(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)), Amount: 500.00, Label: models.LabelDownPayment},
		{Number: 2, DueDate: models.NewISODate(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)), Amount: 261.17, Label: models.LabelRegular, ID: "kept"},
		{Number: 3, DueDate: models.NewISODate(time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)), Amount: 238.83, Label: models.LabelRegular},
	}

	result, err := planner.ResolveSubmission(true, override, baseRequest(nil))
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Amounts, dates and labels untouched; only missing ids filled in.
	for i, ins := range result {
		assert.Equal(t, override[i].Number, ins.Number)
		assert.Equal(t, override[i].Amount, ins.Amount)
		assert.True(t, override[i].DueDate.Equal(ins.DueDate.Time))
		assert.Equal(t, override[i].Label, ins.Label)
		assert.NotEmpty(t, ins.ID)
	}
	assert.Equal(t, "kept", result[1].ID)

	// The input slice itself is not mutated.
	assert.Empty(t, override[0].ID)
}

func TestResolveSubmission_ManualEmptyOverrideRecomputes(t *testing.T) {
	result, err := planner.ResolveSubmission(true, nil, baseRequest(nil))
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, 333.33, result[0].Amount)
}

func TestResolveSubmission_ComputedMatchesBuildPlan(t *testing.T) {
	req := baseRequest(func(r *models.PlanRequest) {
		r.DownPayment = &models.DownPayment{Kind: models.DownPaymentPercent, Value: 20}
	})

	plan, err := planner.BuildPlan(req)
	require.NoError(t, err)

	result, err := planner.ResolveSubmission(false, nil, req)
	require.NoError(t, err)
	require.Len(t, result, len(plan.Installments))

	for i, ins := range result {
		assert.Equal(t, plan.Installments[i].Number, ins.Number)
		assert.Equal(t, plan.Installments[i].Amount, ins.Amount)
		assert.True(t, plan.Installments[i].DueDate.Equal(ins.DueDate.Time))
		assert.NotEmpty(t, ins.ID)
	}
}

func TestResolveSubmission_InvalidRequest(t *testing.T) {
	req := baseRequest(func(r *models.PlanRequest) { r.InstallmentCount = 0 })

	result, err := planner.ResolveSubmission(false, nil, req)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInvalidPlanRequest)
}
