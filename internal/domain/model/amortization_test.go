package model_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/capfin/sanction-service/internal/domain/model"
)

func TestMonthlyInstallment_StandardQuote(t *testing.T) {
	got := model.MonthlyInstallment(decimal.NewFromInt(200000), decimal.NewFromFloat(12.75), 24)

	// Closed form recomputed here rather than a cached constant.
	r := 12.75 / 12.0 / 100.0
	factor := math.Pow(1+r, 24)
	want := 200000 * r * factor / (factor - 1)

	assert.InDelta(t, want, got.InexactFloat64(), 0.01)
}

func TestMonthlyInstallment_RoundedToPaise(t *testing.T) {
	got := model.MonthlyInstallment(decimal.NewFromInt(200000), decimal.NewFromFloat(12.75), 24)

	assert.True(t, got.Equal(got.Round(2)), "installment %s carries sub-paise precision", got)
}

func TestMonthlyInstallment_ZeroRateIsStraightLine(t *testing.T) {
	got := model.MonthlyInstallment(decimal.NewFromInt(120000), decimal.Zero, 24)

	assert.True(t, got.Equal(decimal.NewFromInt(5000)), "installment = %s", got)
}

func TestMonthlyInstallment_NonPositiveTerm(t *testing.T) {
	assert.True(t, model.MonthlyInstallment(decimal.NewFromInt(100000), decimal.NewFromFloat(10), 0).IsZero())
	assert.True(t, model.MonthlyInstallment(decimal.NewFromInt(100000), decimal.NewFromFloat(10), -6).IsZero())
}

func TestMonthlyInstallment_ZeroPrincipal(t *testing.T) {
	got := model.MonthlyInstallment(decimal.Zero, decimal.NewFromFloat(12), 36)

	assert.True(t, got.IsZero(), "installment = %s", got)
}

func TestMonthlyInstallment_GrowsWithRate(t *testing.T) {
	principal := decimal.NewFromInt(500000)
	low := model.MonthlyInstallment(principal, decimal.NewFromFloat(8), 60)
	high := model.MonthlyInstallment(principal, decimal.NewFromFloat(16), 60)

	assert.True(t, high.GreaterThan(low), "low %s high %s", low, high)
}

func TestTotalPayable(t *testing.T) {
	installment := decimal.NewFromFloat(9484.9)

	total := model.TotalPayable(installment, 24)

	assert.True(t, total.Equal(decimal.NewFromFloat(227637.6)), "total = %s", total)
	assert.True(t, model.TotalPayable(installment, 0).IsZero())
}

func TestTotalInterest(t *testing.T) {
	principal := decimal.NewFromInt(200000)
	installment := model.MonthlyInstallment(principal, decimal.NewFromFloat(12.75), 24)

	interest := model.TotalInterest(principal, installment, 24)

	assert.True(t, interest.GreaterThan(decimal.NewFromInt(27000)), "interest = %s", interest)
	assert.True(t, interest.LessThan(decimal.NewFromInt(28000)), "interest = %s", interest)
}

func TestTotalInterest_FlooredAtZero(t *testing.T) {
	// 100000 over 3 months at 0% rounds the installment down far enough
	// that the summed repayment is a paise short of the principal.
	principal := decimal.NewFromInt(100000)
	installment := model.MonthlyInstallment(principal, decimal.Zero, 3)

	interest := model.TotalInterest(principal, installment, 3)

	assert.True(t, interest.IsZero(), "interest = %s", interest)
}
