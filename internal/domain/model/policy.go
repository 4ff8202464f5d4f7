package model

import "github.com/shopspring/decimal"

// LendingPolicy carries the product limits and fee parameters applied when
// terms are quoted. Values are configurable per deployment; DefaultPolicy
// matches the current personal-loan product.
type LendingPolicy struct {
	MinPrincipal decimal.Decimal
	MaxPrincipal decimal.Decimal
	MinRatePct   decimal.Decimal
	MaxRatePct   decimal.Decimal

	// ProcessingFeeBase is the flat fee before tax; GSTRate is applied on top
	// and the tax component rounded to the nearest rupee.
	ProcessingFeeBase decimal.Decimal
	GSTRate           decimal.Decimal
}

// DefaultPolicy returns the standard personal-loan policy.
func DefaultPolicy() LendingPolicy {
	return LendingPolicy{
		MinPrincipal:      decimal.NewFromInt(50000),
		MaxPrincipal:      decimal.NewFromInt(5000000),
		MinRatePct:        decimal.NewFromFloat(5.0),
		MaxRatePct:        decimal.NewFromFloat(25.0),
		ProcessingFeeBase: decimal.NewFromInt(1499),
		GSTRate:           decimal.NewFromFloat(0.18),
	}
}

// ProcessingFee returns the full fee including GST: base + round(base * rate).
func (p LendingPolicy) ProcessingFee() decimal.Decimal {
	gst := p.ProcessingFeeBase.Mul(p.GSTRate).Round(0)
	return p.ProcessingFeeBase.Add(gst)
}
