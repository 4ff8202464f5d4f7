package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/capfin/sanction-service/internal/domain/model"
)

// SimulatedLedger content-addresses each entry: the transaction hash is the
// SHA-256 of the entry payload, formatted like a chain transaction ID. No
// state is kept, so the same entry always yields the same hash.
type SimulatedLedger struct{}

// NewSimulatedLedger creates the ledger.
func NewSimulatedLedger() *SimulatedLedger {
	return &SimulatedLedger{}
}

// RecordSanction implements port.SanctionLedger.
func (l *SimulatedLedger) RecordSanction(_ context.Context, letter model.SanctionLetter) (string, error) {
	payload := fmt.Sprintf("sanction|%s|%s|%s|%d",
		letter.ReferenceID(),
		letter.Applicant().Mobile(),
		letter.Terms().Principal(),
		letter.Terms().Tenure().Months(),
	)
	return entryHash(payload), nil
}

// RecordAdvisory implements port.SanctionLedger.
func (l *SimulatedLedger) RecordAdvisory(_ context.Context, customerID, decision string) (string, error) {
	return entryHash(fmt.Sprintf("advisory|%s|%s", customerID, decision)), nil
}

func entryHash(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return "0x" + hex.EncodeToString(sum[:])
}
