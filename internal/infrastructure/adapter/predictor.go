package adapter

import (
	"context"
	"math"
)

// Feature keys the predictor understands. Missing features contribute zero.
const (
	FeatureMonthlyIncome = "monthly_income"
	FeatureLoanAmount    = "loan_amount"
	FeatureBureauScore   = "bureau_score"
)

// LogisticPredictor scores approval chance with a fixed logistic curve. It
// stands in for a trained model host: deterministic, dependency-free, and
// tuned so that the synthetic book's typical customer lands around 70%.
type LogisticPredictor struct{}

// NewLogisticPredictor creates the predictor.
func NewLogisticPredictor() *LogisticPredictor {
	return &LogisticPredictor{}
}

// Predict implements port.ApprovalPredictor.
func (p *LogisticPredictor) Predict(_ context.Context, features map[string]float64) (float64, error) {
	z := -1.0 +
		1.2*(features[FeatureMonthlyIncome]/100000) +
		1.5*((features[FeatureBureauScore]-650)/100) -
		0.8*(features[FeatureLoanAmount]/1000000)

	return 1 / (1 + math.Exp(-z)), nil
}
