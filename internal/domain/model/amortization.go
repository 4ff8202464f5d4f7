package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyInstallment computes the fixed monthly payment (EMI) that amortizes
// principal over termMonths at the given annual nominal rate in percent.
//
// The calculation uses:
//
//	monthlyRate = annualRatePct / 12 / 100
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Edge policy, in order:
//   - termMonths <= 0 returns zero
//   - a 0% rate degenerates the formula, so it falls back to principal/term
//   - any non-finite intermediate result returns zero
//
// A quote must never crash, so bad numeric input degrades to zero instead of
// propagating an error.
func MonthlyInstallment(principal, annualRatePct decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}

	monthlyRate := annualRatePct.InexactFloat64() / 12.0 / 100.0
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	// Float math for the power term, decimal for the monetary result.
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(payment).Round(2)
}

// TotalPayable returns the gross repayment over the full term for a given
// installment, i.e. installment * termMonths.
func TotalPayable(installment decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	return installment.Mul(decimal.NewFromInt(int64(termMonths)))
}

// TotalInterest returns the interest portion of the gross repayment, floored
// at zero for degenerate quotes.
func TotalInterest(principal, installment decimal.Decimal, termMonths int) decimal.Decimal {
	interest := TotalPayable(installment, termMonths).Sub(principal)
	if interest.IsNegative() {
		return decimal.Zero
	}
	return interest
}
