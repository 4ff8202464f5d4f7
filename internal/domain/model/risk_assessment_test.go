package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/capfin/sanction-service/internal/domain/model"
)

func TestNewRiskAssessment_ClampsToRange(t *testing.T) {
	high := model.NewRiskAssessment(140, nil)
	assert.True(t, high.Score().Equal(decimal.NewFromInt(100)), "score = %s", high.Score())

	low := model.NewRiskAssessment(-12.5, nil)
	assert.True(t, low.Score().IsZero(), "score = %s", low.Score())
}

func TestNewRiskAssessment_OneDecimalPlace(t *testing.T) {
	a := model.NewRiskAssessment(78.123, nil)
	assert.Equal(t, "78.1", a.Score().StringFixed(1))
}

func TestRiskAssessment_SignalsAreCopied(t *testing.T) {
	signals := []string{"income_tier_mid", "ltv_low"}
	a := model.NewRiskAssessment(78, signals)

	signals[0] = "mutated"
	got := a.Signals()
	got[1] = "mutated"

	assert.Equal(t, []string{"income_tier_mid", "ltv_low"}, a.Signals())
}
