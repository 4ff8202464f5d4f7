package model

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ApplicantInput – raw, untrusted form input
// ---------------------------------------------------------------------------

// ApplicantInput carries the applicant fields exactly as submitted. Any field
// may be empty or malformed; nothing is trusted until validation has run.
type ApplicantInput struct {
	Name          string
	Mobile        string
	Email         string
	PAN           string
	MonthlyIncome decimal.Decimal
	Agreed        bool
}

// ---------------------------------------------------------------------------
// ApplicantRecord – validated, immutable applicant
// ---------------------------------------------------------------------------

// ApplicantRecord is an immutable applicant built from normalized input. It is
// only constructible through NewApplicantRecord once every blocking check has
// passed; it lives for the duration of one submission and is never persisted.
type ApplicantRecord struct {
	name          string
	mobile        string
	email         string
	pan           string
	panValid      bool
	monthlyIncome decimal.Decimal
}

// NewApplicantRecord validates raw applicant input and, when every blocking
// rule passes, returns the canonical record built from the normalized values.
//
// All rules are checked on every call so the caller receives the complete
// failure list in one pass, in stable order: name, mobile, email, agreement.
// The PAN format check never blocks; its outcome is carried on the record and
// feeds the risk score instead.
func NewApplicantRecord(input ApplicantInput) (ApplicantRecord, []valueobject.FieldError) {
	name := strings.TrimSpace(input.Name)
	mobile := NormalizeMobile(input.Mobile)
	email := strings.TrimSpace(input.Email)
	pan := NormalizePAN(input.PAN)

	var errs []valueobject.FieldError

	if name == "" {
		errs = append(errs, valueobject.FieldError{
			Field: valueobject.FieldName, Reason: "Full Name is required",
		})
	}
	if len(mobile) != 10 {
		errs = append(errs, valueobject.FieldError{
			Field: valueobject.FieldMobile, Reason: "Mobile must have 10 digits",
		})
	}
	if !validEmail(email) {
		errs = append(errs, valueobject.FieldError{
			Field: valueobject.FieldEmail, Reason: "Valid Email is required",
		})
	}
	if !input.Agreed {
		errs = append(errs, valueobject.FieldError{
			Field: valueobject.FieldAgreement, Reason: "Terms & Conditions must be accepted",
		})
	}

	if len(errs) > 0 {
		return ApplicantRecord{}, errs
	}

	return ApplicantRecord{
		name:          name,
		mobile:        mobile,
		email:         email,
		pan:           pan,
		panValid:      panRe.MatchString(pan),
		monthlyIncome: input.MonthlyIncome,
	}, nil
}

// validEmail applies the minimal shape check: an "@" must be present and the
// part after the last "@" must contain a dot.
func validEmail(email string) bool {
	if email == "" || !strings.Contains(email, "@") {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a ApplicantRecord) Name() string                   { return a.name }
func (a ApplicantRecord) Mobile() string                 { return a.mobile }
func (a ApplicantRecord) Email() string                  { return a.email }
func (a ApplicantRecord) PAN() string                    { return a.pan }
func (a ApplicantRecord) PANValid() bool                 { return a.panValid }
func (a ApplicantRecord) MonthlyIncome() decimal.Decimal { return a.monthlyIncome }

// IsZero returns true for the zero record, i.e. one that never passed
// validation.
func (a ApplicantRecord) IsZero() bool { return a.name == "" }
