package port

import (
	"context"
	"errors"

	"github.com/capfin/sanction-service/internal/domain/model"
)

// ErrNotFound reports a directory or bureau lookup miss.
var ErrNotFound = errors.New("not found")

// CustomerLookup defines the port for the customer directory.
type CustomerLookup interface {
	// ByMobile retrieves the profile registered under a 10-digit mobile.
	ByMobile(ctx context.Context, mobile string) (model.CustomerProfile, error)

	// OffersFor retrieves the pre-approved offers for a customer.
	OffersFor(ctx context.Context, customerID string) ([]model.Offer, error)
}

// ScoreLookup defines the port for the credit bureau.
type ScoreLookup interface {
	// ByPAN retrieves the bureau score registered under a PAN.
	ByPAN(ctx context.Context, pan string) (int, error)
}

// ApprovalPredictor defines the port for the approval model used during
// pre-qualification.
type ApprovalPredictor interface {
	// Predict returns the approval probability in [0, 1] for the given
	// numeric features.
	Predict(ctx context.Context, features map[string]float64) (float64, error)
}

// SanctionLedger defines the port for the append-only audit ledger.
type SanctionLedger interface {
	// RecordSanction appends an issued letter and returns the entry hash.
	RecordSanction(ctx context.Context, letter model.SanctionLetter) (string, error)

	// RecordAdvisory appends a pre-qualification advisory and returns the
	// entry hash.
	RecordAdvisory(ctx context.Context, customerID, decision string) (string, error)
}

// TextExtractor defines the port for pulling applicant fields out of an
// uploaded document.
type TextExtractor interface {
	// Extract parses a document and returns whatever applicant fields it
	// could recognise, with ok=false when no extraction backend is
	// available. Unavailability is a value, not an error.
	Extract(ctx context.Context, filename string, data []byte) (fields model.ApplicantInput, ok bool, err error)
}
