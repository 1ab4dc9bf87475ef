// Package models defines the data structures for the credit plan engine.
package models

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidPlanRequest = errors.New("invalid plan request")
	ErrInvalidAmount      = errors.New("invalid amount")
)

// ValidatePlanRequest checks a plan request before any computation. It
// never partially computes a result: a request that fails here produces
// no installments at all.
func ValidatePlanRequest(r *PlanRequest) error {
	if r == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidPlanRequest)
	}

	if r.PrincipalTotal <= 0 {
		return fmt.Errorf("%w: principal_total must be > 0", ErrInvalidPlanRequest)
	}

	if r.IssueDate.IsZero() {
		return fmt.Errorf("%w: issue_date is required", ErrInvalidPlanRequest)
	}

	if r.DaysToFirstDue < 0 {
		return fmt.Errorf("%w: days_to_first_due must be >= 0", ErrInvalidPlanRequest)
	}

	if r.DaysBetweenInstallments <= 0 {
		return fmt.Errorf("%w: days_between_installments must be > 0", ErrInvalidPlanRequest)
	}

	if r.InstallmentCount < 1 {
		return fmt.Errorf("%w: installment_count must be >= 1", ErrInvalidPlanRequest)
	}

	if !r.InterestKind.IsValid() {
		return fmt.Errorf("%w: unknown interest_kind %q", ErrInvalidPlanRequest, r.InterestKind)
	}

	if r.InterestKind != InterestKindNone && r.InterestRatePerPeriod < 0 {
		return fmt.Errorf("%w: interest_rate_per_period must be >= 0", ErrInvalidPlanRequest)
	}

	if r.DownPayment != nil && !r.DownPayment.Kind.IsValid() {
		return fmt.Errorf("%w: unknown down_payment kind %q", ErrInvalidPlanRequest, r.DownPayment.Kind)
	}

	return nil
}
