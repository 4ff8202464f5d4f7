package model

import (
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// LoanTerms is the priced loan request: the requested principal, rate and
// tenure together with every amount derived from them. Construct via
// NewLoanTerms; a zero LoanTerms means the request failed validation.
type LoanTerms struct {
	principal     decimal.Decimal
	annualRatePct decimal.Decimal
	tenure        valueobject.Tenure
	purpose       valueobject.LoanPurpose

	installment   decimal.Decimal
	processingFee decimal.Decimal
	netDisbursed  decimal.Decimal
}

// NewLoanTerms validates the requested terms against policy and prices them.
// All rules are evaluated so the caller receives every failing field at once,
// in a stable order: loan_amount, interest_rate, tenure_months, purpose.
func NewLoanTerms(policy LendingPolicy, principal, annualRatePct decimal.Decimal, termMonths int, purpose string) (LoanTerms, []valueobject.FieldError) {
	var errs []valueobject.FieldError

	if principal.LessThan(policy.MinPrincipal) || principal.GreaterThan(policy.MaxPrincipal) {
		errs = append(errs, valueobject.FieldError{Field: valueobject.FieldLoanAmount, Reason: "Loan Amount is outside the allowed range"})
	}
	if annualRatePct.LessThan(policy.MinRatePct) || annualRatePct.GreaterThan(policy.MaxRatePct) {
		errs = append(errs, valueobject.FieldError{Field: valueobject.FieldRate, Reason: "Interest Rate is outside the allowed range"})
	}

	tenure, err := valueobject.NewTenure(termMonths)
	if err != nil {
		errs = append(errs, valueobject.FieldError{Field: valueobject.FieldTenure, Reason: "Tenure must be one of the offered terms"})
	}

	loanPurpose, err := valueobject.NewLoanPurpose(purpose)
	if err != nil {
		errs = append(errs, valueobject.FieldError{Field: valueobject.FieldPurpose, Reason: "Purpose must be selected from the catalog"})
	}

	if len(errs) > 0 {
		return LoanTerms{}, errs
	}

	fee := policy.ProcessingFee()
	net := principal.Sub(fee)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return LoanTerms{
		principal:     principal,
		annualRatePct: annualRatePct,
		tenure:        tenure,
		purpose:       loanPurpose,
		installment:   MonthlyInstallment(principal, annualRatePct, termMonths),
		processingFee: fee,
		netDisbursed:  net,
	}, nil
}

func (t LoanTerms) Principal() decimal.Decimal     { return t.principal }
func (t LoanTerms) AnnualRatePct() decimal.Decimal { return t.annualRatePct }
func (t LoanTerms) Tenure() valueobject.Tenure     { return t.tenure }
func (t LoanTerms) Purpose() valueobject.LoanPurpose {
	return t.purpose
}
func (t LoanTerms) Installment() decimal.Decimal   { return t.installment }
func (t LoanTerms) ProcessingFee() decimal.Decimal { return t.processingFee }
func (t LoanTerms) NetDisbursed() decimal.Decimal  { return t.netDisbursed }

// IsZero reports whether the terms were never successfully constructed.
func (t LoanTerms) IsZero() bool {
	return t.principal.IsZero() && t.tenure.IsZero()
}
