// Package planner implements the installment plan generation and
// reconciliation core. Everything in this package is a pure function:
// no I/O, no randomness, identical input yields identical output.
package planner

import (
	"math"

	"credit-plan-engine/internal/models"
	"credit-plan-engine/internal/utils"
)

// BuildPlan computes the installment schedule for a plan request.
//
// The down-payment row, when its resolved amount is positive, is always
// installment number 1 and shares the "Net X" first due date; regular
// installments then follow at a rigid cadence of DaysBetweenInstallments
// calendar days. Amounts are rounded to the cent exactly once; totals are
// plain sums of the already-rounded rows, so the schedule reconciles by
// construction.
func BuildPlan(req *models.PlanRequest) (*models.PlanResult, error) {
	if err := models.ValidatePlanRequest(req); err != nil {
		return nil, err
	}

	principal := float64(req.PrincipalTotal)
	downAmount := resolveDownPayment(principal, req.DownPayment)

	firstDue := utils.AddDays(req.IssueDate.Time, req.DaysToFirstDue)

	installments := make([]models.Installment, 0, req.InstallmentCount)
	regularStart := firstDue
	remaining := req.InstallmentCount

	if downAmount > 0 {
		installments = append(installments, models.Installment{
			Number:  1,
			DueDate: models.ISODate{Time: firstDue},
			Amount:  downAmount,
			Label:   models.LabelDownPayment,
		})
		regularStart = utils.AddDays(firstDue, req.DaysBetweenInstallments)
		remaining--
	}
	if remaining < 0 {
		remaining = 0
	}

	financed := utils.Round2(principal - downAmount)

	rate := float64(req.InterestRatePerPeriod)
	kind := req.InterestKind
	if kind == models.InterestKindNone {
		rate = 0
	}
	// Compound amortization degenerates (division by zero) at rate 0;
	// the even-split policy applies instead.
	if kind == models.InterestKindCompound && rate == 0 {
		kind = models.InterestKindNone
	}

	var amounts []float64
	var totalInterest float64

	switch {
	case remaining == 0:
		// Down payment only, nothing to amortize.
	case kind == models.InterestKindSimple:
		amounts, totalInterest = equalCapitalAmounts(financed, rate, remaining)
	case kind == models.InterestKindCompound:
		amounts, totalInterest = frenchAmounts(financed, rate, remaining)
	default:
		amounts = evenSplitAmounts(financed, remaining)
	}

	for k, amount := range amounts {
		installments = append(installments, models.Installment{
			Number:  len(installments) + 1,
			DueDate: models.ISODate{Time: utils.AddDays(regularStart, req.DaysBetweenInstallments*k)},
			Amount:  amount,
			Label:   models.LabelRegular,
		})
	}

	totalPayable := 0.0
	for _, ins := range installments {
		totalPayable += ins.Amount
	}

	return &models.PlanResult{
		Installments:      installments,
		TotalInterest:     utils.Round2(totalInterest),
		PrincipalFinanced: financed,
		TotalPayable:      utils.Round2(totalPayable),
	}, nil
}

// resolveDownPayment turns the optional tagged variant into a concrete
// amount. A resolved amount <= 0 means no down-payment row at all.
func resolveDownPayment(principal float64, dp *models.DownPayment) float64 {
	if dp == nil {
		return 0
	}

	value := float64(dp.Value)
	var amount float64
	if dp.Kind == models.DownPaymentPercent {
		amount = utils.Round2(principal * value / 100)
	} else {
		amount = utils.Round2(value)
	}

	if amount <= 0 {
		return 0
	}
	return amount
}

// evenSplitAmounts divides the financed principal across n rows without
// interest. The base is floored to the cent and the last row absorbs the
// residual, so the rows always sum back to the principal exactly.
func evenSplitAmounts(principal float64, n int) []float64 {
	base := utils.FloorCents(principal / float64(n))

	amounts := make([]float64, n)
	for k := range amounts {
		amounts[k] = base
	}
	amounts[n-1] = utils.Round2(principal - base*float64(n-1))

	return amounts
}

// equalCapitalAmounts amortizes with a fixed capital component per period
// and interest on the declining balance. The capital component is rounded
// up front, so the schedule may drift from the principal by a few cents;
// that drift is a documented tolerance of this amortization convention,
// not corrected here.
func equalCapitalAmounts(principal, rate float64, n int) ([]float64, float64) {
	capital := utils.Round2(principal / float64(n))
	outstanding := principal
	totalInterest := 0.0

	amounts := make([]float64, n)
	for k := 0; k < n; k++ {
		interest := utils.Round2(outstanding * rate)
		amounts[k] = utils.Round2(capital + interest)
		outstanding -= capital
		totalInterest += interest
	}

	return amounts, totalInterest
}

// frenchAmounts amortizes with a fixed total payment per period: the
// interest share declines and the capital share grows as the balance is
// paid down. Callers guard rate == 0.
func frenchAmounts(principal, rate float64, n int) ([]float64, float64) {
	payment := utils.Round2(principal * rate / (1 - math.Pow(1+rate, -float64(n))))
	outstanding := principal
	totalInterest := 0.0

	amounts := make([]float64, n)
	for k := 0; k < n; k++ {
		interest := utils.Round2(outstanding * rate)
		capital := utils.Round2(payment - interest)
		amounts[k] = payment
		outstanding -= capital
		totalInterest += interest
	}

	return amounts, totalInterest
}
