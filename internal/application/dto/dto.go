package dto

import (
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// IssueSanctionRequest carries one loan application exactly as submitted.
type IssueSanctionRequest struct {
	Name              string          `json:"name"`
	Mobile            string          `json:"mobile"`
	Email             string          `json:"email"`
	PAN               string          `json:"pan"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	AnnualRatePct     decimal.Decimal `json:"annual_rate_pct"`
	TermMonths        int             `json:"term_months"`
	Purpose           string          `json:"purpose"`
	AgreementAccepted bool            `json:"agreement_accepted"`
}

// SMTPOverride carries per-request relay settings; all fields empty means the
// deployment default relay.
type SMTPOverride struct {
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// EmailSanctionRequest generates a letter and mails it in one call.
type EmailSanctionRequest struct {
	IssueSanctionRequest
	To      string       `json:"to,omitempty"`
	Subject string       `json:"subject,omitempty"`
	Body    string       `json:"body,omitempty"`
	SMTP    SMTPOverride `json:"smtp,omitempty"`
}

// PrequalificationRequest asks for an advisory for an existing customer.
type PrequalificationRequest struct {
	Mobile string `json:"mobile"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// SanctionResponse is the external representation of an issued letter.
// Byte fields marshal as base64 strings.
type SanctionResponse struct {
	ReferenceID   string          `json:"reference_id"`
	Installment   decimal.Decimal `json:"installment"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	NetDisbursed  decimal.Decimal `json:"net_disbursed"`
	RiskScore     string          `json:"risk_score"`
	DocumentPDF   []byte          `json:"document_pdf"`
	QRPNG         []byte          `json:"qr_png"`
	ShareMessage  string          `json:"share_message"`
	WhatsAppLink  string          `json:"whatsapp_link"`
	Degradations  []string        `json:"degradations,omitempty"`
	LedgerTx      string          `json:"ledger_tx,omitempty"`
}

// EmailDispatchResponse reports the outcome of an SMTP dispatch. A refused
// dispatch is a result, not an error; the letter itself is unaffected.
type EmailDispatchResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// OfferResponse is one pre-approved offer.
type OfferResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	RatePct     decimal.Decimal `json:"rate_pct"`
	TermMonths  int             `json:"term_months"`
	Installment decimal.Decimal `json:"installment"`
}

// PrequalificationResponse is the composed advisory for a known customer.
type PrequalificationResponse struct {
	CustomerID     string          `json:"customer_id"`
	Name           string          `json:"name"`
	Mobile         string          `json:"mobile"`
	BureauScore    int             `json:"bureau_score"`
	ApprovalChance decimal.Decimal `json:"approval_chance_pct"`
	Decision       string          `json:"decision"`
	Offer          OfferResponse   `json:"offer"`
	Advisory       string          `json:"advisory"`
	LedgerTx       string          `json:"ledger_tx,omitempty"`
}

// ExtractedFieldsResponse carries whatever applicant fields the extractor
// recognised in an uploaded document.
type ExtractedFieldsResponse struct {
	Available bool            `json:"available"`
	Message   string          `json:"message,omitempty"`
	Name      string          `json:"name,omitempty"`
	Mobile    string          `json:"mobile,omitempty"`
	Email     string          `json:"email,omitempty"`
	PAN       string          `json:"pan,omitempty"`
	Income    decimal.Decimal `json:"monthly_income,omitempty"`
}

// CreditScoreResponse is the bureau view of one PAN.
type CreditScoreResponse struct {
	PAN   string `json:"pan"`
	Score int    `json:"score"`
}

// OffersResponse lists the offers for one customer.
type OffersResponse struct {
	CustomerID string          `json:"customer_id"`
	Offers     []OfferResponse `json:"offers"`
}

// ToOfferResponse converts a domain offer.
func ToOfferResponse(offer model.Offer) OfferResponse {
	return OfferResponse{
		Amount:      offer.Amount,
		RatePct:     offer.RatePct,
		TermMonths:  offer.TermMonths,
		Installment: offer.Installment,
	}
}
