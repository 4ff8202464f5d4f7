package model

import "github.com/shopspring/decimal"

// RiskAssessment is the eligibility verdict attached to a sanction: a score
// on a 0-100 scale (higher is safer) and the rule signals that produced it.
type RiskAssessment struct {
	score   decimal.Decimal
	signals []string
}

// NewRiskAssessment clamps the raw score into [0, 100] and rounds it to one
// decimal place.
func NewRiskAssessment(raw float64, signals []string) RiskAssessment {
	score := decimal.NewFromFloat(raw)
	if score.IsNegative() {
		score = decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	if score.GreaterThan(hundred) {
		score = hundred
	}
	return RiskAssessment{
		score:   score.Round(1),
		signals: append([]string(nil), signals...),
	}
}

func (a RiskAssessment) Score() decimal.Decimal { return a.score }

// Signals returns a copy of the rule signals in firing order.
func (a RiskAssessment) Signals() []string {
	return append([]string(nil), a.signals...)
}

func (a RiskAssessment) IsZero() bool {
	return a.score.IsZero() && len(a.signals) == 0
}
