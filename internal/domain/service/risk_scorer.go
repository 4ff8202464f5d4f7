package service

import (
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/model"
)

// ScoreInput contains the data required for eligibility scoring.
type ScoreInput struct {
	MonthlyIncome    decimal.Decimal
	LoanAmount       decimal.Decimal
	IdentityVerified bool
}

// RiskScorer is a domain service that derives the eligibility score using
// rule-based logic. Higher scores mean safer applicants.
type RiskScorer struct{}

// NewRiskScorer creates a new RiskScorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score evaluates an applicant against the loan they asked for. The base
// score is 50. Income tiers and the loan-to-annual-income ratio adjust it,
// and a verified identity number adds a small bonus.
func (s *RiskScorer) Score(input ScoreInput) model.RiskAssessment {
	score := 50
	signals := make([]string, 0)

	// Rule: monthly income tier.
	switch {
	case input.MonthlyIncome.GreaterThanOrEqual(decimal.NewFromInt(200000)):
		score += 20
		signals = append(signals, "income_tier_top")
	case input.MonthlyIncome.GreaterThanOrEqual(decimal.NewFromInt(100000)):
		score += 12
		signals = append(signals, "income_tier_high")
	case input.MonthlyIncome.GreaterThanOrEqual(decimal.NewFromInt(50000)):
		score += 6
		signals = append(signals, "income_tier_mid")
	case input.MonthlyIncome.GreaterThanOrEqual(decimal.NewFromInt(25000)):
		score += 2
		signals = append(signals, "income_tier_entry")
	}

	// Rule: loan amount against estimated annual income. The denominator is
	// floored at 1 so a zero income yields a very large ratio, not a panic.
	annualIncome := input.MonthlyIncome.Mul(decimal.NewFromInt(12))
	if annualIncome.LessThan(decimal.NewFromInt(1)) {
		annualIncome = decimal.NewFromInt(1)
	}
	ltv := input.LoanAmount.Div(annualIncome)
	switch {
	case ltv.LessThan(decimal.NewFromFloat(0.4)):
		score += 18
		signals = append(signals, "ltv_low")
	case ltv.LessThan(decimal.NewFromFloat(0.75)):
		score += 6
		signals = append(signals, "ltv_moderate")
	case ltv.LessThan(decimal.NewFromFloat(1.25)):
		score -= 6
		signals = append(signals, "ltv_elevated")
	default:
		score -= 15
		signals = append(signals, "ltv_high")
	}

	// Rule: verified identity number.
	if input.IdentityVerified {
		score += 4
		signals = append(signals, "identity_verified")
	}

	return model.NewRiskAssessment(float64(score), signals)
}
