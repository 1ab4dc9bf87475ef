// Package models defines the data structures for the credit plan engine.
package models

import (
	"encoding/json"
	"time"

	"credit-plan-engine/internal/utils"
)

// InterestKind selects the interest model applied to a plan.
type InterestKind string

const (
	InterestKindNone     InterestKind = "none"
	InterestKindSimple   InterestKind = "simple"
	InterestKindCompound InterestKind = "compound"
)

// ValidInterestKinds returns all valid interest kinds.
func ValidInterestKinds() []InterestKind {
	return []InterestKind{InterestKindNone, InterestKindSimple, InterestKindCompound}
}

// IsValid checks if the interest kind is valid.
func (k InterestKind) IsValid() bool {
	for _, valid := range ValidInterestKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// InstallmentLabel marks an installment row as the down payment or a
// regular installment.
type InstallmentLabel string

const (
	LabelDownPayment InstallmentLabel = "down_payment"
	LabelRegular     InstallmentLabel = "regular"
)

// DownPaymentKind says how a down payment value is interpreted.
type DownPaymentKind string

const (
	DownPaymentAmount  DownPaymentKind = "amount"
	DownPaymentPercent DownPaymentKind = "percent"
)

// IsValid checks if the down payment kind is valid.
func (k DownPaymentKind) IsValid() bool {
	return k == DownPaymentAmount || k == DownPaymentPercent
}

// DownPayment is an explicit tagged variant: a nil *DownPayment means no
// down payment was requested. A resolved amount <= 0 is normalized to
// absent by the builder, not treated as an error.
type DownPayment struct {
	Kind  DownPaymentKind `json:"kind"`
	Value Amount          `json:"value"`
}

// ISODate is a date-only value pinned to business-timezone midnight. It
// unmarshals from either a 2006-01-02 string or an RFC3339 instant and
// always marshals as the UTC instant of the local midnight.
type ISODate struct {
	time.Time
}

// NewISODate normalizes t to business-timezone midnight.
func NewISODate(t time.Time) ISODate {
	return ISODate{utils.Midnight(t)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *ISODate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d ISODate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// PlanRequest is the immutable input of one plan computation.
type PlanRequest struct {
	PrincipalTotal          Amount       `json:"principal_total"`
	IssueDate               ISODate      `json:"issue_date"`
	DaysToFirstDue          int          `json:"days_to_first_due"`
	DaysBetweenInstallments int          `json:"days_between_installments"`
	InstallmentCount        int          `json:"installment_count"`
	InterestKind            InterestKind `json:"interest_kind"`
	InterestRatePerPeriod   Amount       `json:"interest_rate_per_period"`
	DownPayment             *DownPayment `json:"down_payment,omitempty"`
}

// Installment is one output row of a plan. ID correlates rows in the UI
// only; it is never an ordering or financial key, and the persistence
// layer strips it.
type Installment struct {
	Number  int              `json:"number"`
	DueDate ISODate          `json:"due_date"`
	Amount  float64          `json:"amount"`
	Label   InstallmentLabel `json:"label"`
	ID      string           `json:"id,omitempty"`
}

// PlanResult is the full outcome of one plan computation. It is never
// mutated, only recomputed.
type PlanResult struct {
	Installments      []Installment `json:"installments"`
	TotalInterest     float64       `json:"total_interest"`
	PrincipalFinanced float64       `json:"principal_financed"`
	TotalPayable      float64       `json:"total_payable"`
}
