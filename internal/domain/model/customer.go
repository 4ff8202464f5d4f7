package model

import "github.com/shopspring/decimal"

// CustomerProfile is the directory view of a known customer, keyed by mobile.
type CustomerProfile struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Mobile        string          `json:"mobile"`
	PAN           string          `json:"pan"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
}

// Offer is a pre-approved loan offer for an existing customer.
type Offer struct {
	Amount      decimal.Decimal `json:"amount"`
	RatePct     decimal.Decimal `json:"rate_pct"`
	TermMonths  int             `json:"term_months"`
	Installment decimal.Decimal `json:"installment"`
}

// NewOffer prices an offer for the given amount, rate and term.
func NewOffer(amount, ratePct decimal.Decimal, termMonths int) Offer {
	return Offer{
		Amount:      amount,
		RatePct:     ratePct,
		TermMonths:  termMonths,
		Installment: MonthlyInstallment(amount, ratePct, termMonths),
	}
}
