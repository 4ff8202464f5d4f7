package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Tenure – immutable value object
// ---------------------------------------------------------------------------

// Tenure is a loan term drawn from the fixed set of offered terms.
type Tenure struct {
	months int
}

// allowedTenures is the fixed set of terms offered, in months.
var allowedTenures = []int{12, 24, 36, 48, 60, 72, 84}

// NewTenure creates a Tenure from a raw month count.
func NewTenure(months int) (Tenure, error) {
	for _, m := range allowedTenures {
		if m == months {
			return Tenure{months: months}, nil
		}
	}
	return Tenure{}, fmt.Errorf("invalid tenure: %d months is not an offered term", months)
}

// TenureCatalog returns the offered terms in ascending order.
func TenureCatalog() []int {
	out := make([]int, len(allowedTenures))
	copy(out, allowedTenures)
	return out
}

// Months returns the term length in months.
func (t Tenure) Months() int { return t.months }

// String renders the tenure as "<n> Months".
func (t Tenure) String() string { return fmt.Sprintf("%d Months", t.months) }

// IsZero returns true if the tenure has not been initialised.
func (t Tenure) IsZero() bool { return t.months == 0 }
