package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// LoanPurpose – immutable value object
// ---------------------------------------------------------------------------

// LoanPurpose is one entry of the fixed purpose catalog offered to applicants.
type LoanPurpose struct {
	value string
}

const (
	purposeDebtConsolidation = "Debt Consolidation"
	purposeHomeRenovation    = "Home Renovation"
	purposeMedicalExpenses   = "Medical Expenses"
	purposeEducation         = "Education"
	purposeBusiness          = "Business"
	purposeWedding           = "Wedding"
	purposeTravel            = "Travel"
	purposeVehiclePurchase   = "Vehicle Purchase"
	purposeOthers            = "Others"
)

var (
	PurposeDebtConsolidation = LoanPurpose{value: purposeDebtConsolidation}
	PurposeHomeRenovation    = LoanPurpose{value: purposeHomeRenovation}
	PurposeMedicalExpenses   = LoanPurpose{value: purposeMedicalExpenses}
	PurposeEducation         = LoanPurpose{value: purposeEducation}
	PurposeBusiness          = LoanPurpose{value: purposeBusiness}
	PurposeWedding           = LoanPurpose{value: purposeWedding}
	PurposeTravel            = LoanPurpose{value: purposeTravel}
	PurposeVehiclePurchase   = LoanPurpose{value: purposeVehiclePurchase}
	PurposeOthers            = LoanPurpose{value: purposeOthers}
)

// purposeCatalog preserves the order purposes are presented in.
var purposeCatalog = []LoanPurpose{
	PurposeDebtConsolidation,
	PurposeHomeRenovation,
	PurposeMedicalExpenses,
	PurposeEducation,
	PurposeBusiness,
	PurposeWedding,
	PurposeTravel,
	PurposeVehiclePurchase,
	PurposeOthers,
}

var validPurposes = func() map[string]LoanPurpose {
	m := make(map[string]LoanPurpose, len(purposeCatalog))
	for _, p := range purposeCatalog {
		m[p.value] = p
	}
	return m
}()

// NewLoanPurpose creates a LoanPurpose from a raw string.
func NewLoanPurpose(s string) (LoanPurpose, error) {
	p, ok := validPurposes[s]
	if !ok {
		return LoanPurpose{}, fmt.Errorf("invalid loan purpose: %q", s)
	}
	return p, nil
}

// PurposeCatalog returns the catalog in presentation order.
func PurposeCatalog() []LoanPurpose {
	out := make([]LoanPurpose, len(purposeCatalog))
	copy(out, purposeCatalog)
	return out
}

// String returns the catalog label.
func (p LoanPurpose) String() string { return p.value }

// IsZero returns true if the purpose has not been initialised.
func (p LoanPurpose) IsZero() bool { return p.value == "" }

// Equal returns true when both purposes carry the same value.
func (p LoanPurpose) Equal(other LoanPurpose) bool { return p.value == other.value }
