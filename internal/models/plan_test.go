package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-plan-engine/internal/models"
)

func validRequest() *models.PlanRequest {
	return &models.PlanRequest{
		PrincipalTotal:          1000,
		IssueDate:               models.NewISODate(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		DaysToFirstDue:          15,
		DaysBetweenInstallments: 15,
		InstallmentCount:        3,
		InterestKind:            models.InterestKindNone,
	}
}

func TestValidatePlanRequest_Valid(t *testing.T) {
	assert.NoError(t, models.ValidatePlanRequest(validRequest()))

	// Zero grace period and a zero rate are both legal.
	req := validRequest()
	req.DaysToFirstDue = 0
	req.InterestKind = models.InterestKindSimple
	req.InterestRatePerPeriod = 0
	assert.NoError(t, models.ValidatePlanRequest(req))
}

func TestValidatePlanRequest_Invalid(t *testing.T) {
	cases := map[string]func(*models.PlanRequest){
		"nil down payment kind": func(r *models.PlanRequest) {
			r.DownPayment = &models.DownPayment{Kind: "", Value: 10}
		},
		"zero principal":     func(r *models.PlanRequest) { r.PrincipalTotal = 0 },
		"negative principal": func(r *models.PlanRequest) { r.PrincipalTotal = -5 },
		"missing issue date": func(r *models.PlanRequest) { r.IssueDate = models.ISODate{} },
		"zero count":         func(r *models.PlanRequest) { r.InstallmentCount = 0 },
		"zero cadence":       func(r *models.PlanRequest) { r.DaysBetweenInstallments = 0 },
		"bad interest kind":  func(r *models.PlanRequest) { r.InterestKind = "monthly" },
		"negative rate": func(r *models.PlanRequest) {
			r.InterestKind = models.InterestKindCompound
			r.InterestRatePerPeriod = -1
		},
	}

	for name, override := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			override(req)
			assert.ErrorIs(t, models.ValidatePlanRequest(req), models.ErrInvalidPlanRequest)
		})
	}
}

func TestValidatePlanRequest_Nil(t *testing.T) {
	assert.ErrorIs(t, models.ValidatePlanRequest(nil), models.ErrInvalidPlanRequest)
}

func TestISODate_JSONRoundTrip(t *testing.T) {
	var d models.ISODate
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-15"`), &d))

	// Date-only input is pinned to business-timezone midnight (UTC-6).
	assert.Equal(t, time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-15T06:00:00Z"`, string(out))
}

func TestISODate_UnmarshalInvalid(t *testing.T) {
	var d models.ISODate
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}

func TestPlanRequest_UnmarshalFormPayload(t *testing.T) {
	// The admin UI sends amounts as strings, sometimes with comma
	// decimals, and the down payment as a tagged object.
	payload := `{
		"principal_total": "2500,00",
		"issue_date": "2025-02-01",
		"days_to_first_due": 30,
		"days_between_installments": 30,
		"installment_count": 4,
		"interest_kind": "simple",
		"interest_rate_per_period": 0.02,
		"down_payment": {"kind": "percent", "value": "10"}
	}`

	var req models.PlanRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, models.Amount(2500), req.PrincipalTotal)
	assert.Equal(t, models.InterestKindSimple, req.InterestKind)
	require.NotNil(t, req.DownPayment)
	assert.Equal(t, models.DownPaymentPercent, req.DownPayment.Kind)
	assert.Equal(t, models.Amount(10), req.DownPayment.Value)
}
