package valueobject

// ---------------------------------------------------------------------------
// FieldError – validation failure for a single input field
// ---------------------------------------------------------------------------

// Field keys, in the stable order failures are reported: applicant fields
// first, loan-term fields after.
const (
	FieldName       = "name"
	FieldMobile     = "mobile"
	FieldEmail      = "email"
	FieldAgreement  = "agreement"
	FieldLoanAmount = "loan_amount"
	FieldRate       = "interest_rate"
	FieldTenure     = "tenure_months"
	FieldPurpose    = "purpose"
)

// FieldError describes one field that failed validation. Reason is the
// human-readable label shown to the applicant.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error satisfies the error interface so a FieldError can be wrapped.
func (e FieldError) Error() string { return e.Field + ": " + e.Reason }

// FieldNames flattens a failure list to its field keys, preserving order.
func FieldNames(errs []FieldError) []string {
	if len(errs) == 0 {
		return nil
	}
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}
