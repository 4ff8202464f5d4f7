package event

import (
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Sanction letter events
// ---------------------------------------------------------------------------

// SanctionIssued is raised when a provisional sanction letter is generated.
type SanctionIssued struct {
	events.BaseEvent
	ApplicantName string          `json:"applicant_name"`
	Mobile        string          `json:"mobile"`
	Principal     decimal.Decimal `json:"principal"`
	TermMonths    int             `json:"term_months"`
	Installment   decimal.Decimal `json:"installment"`
	Score         decimal.Decimal `json:"score"`
}

func NewSanctionIssued(
	referenceID, applicantName, mobile string,
	principal decimal.Decimal, termMonths int,
	installment, score decimal.Decimal,
) SanctionIssued {
	return SanctionIssued{
		BaseEvent:     events.NewBaseEvent("sanction.letter.issued", referenceID, "SanctionLetter"),
		ApplicantName: applicantName,
		Mobile:        mobile,
		Principal:     principal,
		TermMonths:    termMonths,
		Installment:   installment,
		Score:         score,
	}
}

// SanctionEmailed is raised after a dispatch attempt of the letter over SMTP,
// whether or not the relay accepted it.
type SanctionEmailed struct {
	events.BaseEvent
	Recipient string `json:"recipient"`
	Sent      bool   `json:"sent"`
}

func NewSanctionEmailed(referenceID, recipient string, sent bool) SanctionEmailed {
	return SanctionEmailed{
		BaseEvent: events.NewBaseEvent("sanction.letter.emailed", referenceID, "SanctionLetter"),
		Recipient: recipient,
		Sent:      sent,
	}
}

// ---------------------------------------------------------------------------
// Application events
// ---------------------------------------------------------------------------

// ApplicationRejected is raised when a request fails input validation.
type ApplicationRejected struct {
	events.BaseEvent
	Fields []string `json:"fields"`
}

func NewApplicationRejected(mobile string, fields []string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent: events.NewBaseEvent("sanction.application.rejected", mobile, "Application"),
		Fields:    fields,
	}
}

// PrequalificationAdvised is raised when the pre-qualification flow produces
// an advisory for a known customer.
type PrequalificationAdvised struct {
	events.BaseEvent
	Mobile       string          `json:"mobile"`
	Decision     string          `json:"decision"`
	BureauScore  int             `json:"bureau_score"`
	OfferAmount  decimal.Decimal `json:"offer_amount"`
	OfferRatePct decimal.Decimal `json:"offer_rate_pct"`
}

func NewPrequalificationAdvised(
	customerID, mobile, decision string,
	bureauScore int,
	offerAmount, offerRatePct decimal.Decimal,
) PrequalificationAdvised {
	return PrequalificationAdvised{
		BaseEvent:    events.NewBaseEvent("sanction.prequalification.advised", customerID, "Prequalification"),
		Mobile:       mobile,
		Decision:     decision,
		BureauScore:  bureauScore,
		OfferAmount:  offerAmount,
		OfferRatePct: offerRatePct,
	}
}
