// Package models defines the data structures for the credit plan engine.
package models

import "time"

// CreditMode records whether the submitted schedule was engine-computed or
// hand-edited by an operator.
type CreditMode string

const (
	CreditModeComputed CreditMode = "computed"
	CreditModeManual   CreditMode = "manual"
)

// Credit is a persisted credit with its final installment schedule.
type Credit struct {
	ID                string        `json:"id" db:"id"`
	Reference         string        `json:"reference,omitempty" db:"reference"`
	Mode              CreditMode    `json:"mode" db:"mode"`
	InterestKind      InterestKind  `json:"interest_kind" db:"interest_kind"`
	PrincipalTotal    float64       `json:"principal_total" db:"principal_total"`
	PrincipalFinanced float64       `json:"principal_financed" db:"principal_financed"`
	TotalInterest     float64       `json:"total_interest" db:"total_interest"`
	TotalPayable      float64       `json:"total_payable" db:"total_payable"`
	Installments      []Installment `json:"installments"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// CreditCreate is the submission payload: the plan request plus, when the
// operator opted into manual mode, the edited schedule to accept verbatim.
type CreditCreate struct {
	Reference    string        `json:"reference,omitempty"`
	Plan         PlanRequest   `json:"plan"`
	IsManual     bool          `json:"is_manual"`
	Installments []Installment `json:"installments,omitempty"`
}
