package adapter

import (
	"context"

	"github.com/capfin/sanction-service/internal/domain/model"
)

// UnavailableTextExtractor is the default extraction backend: it reports
// that no OCR engine is wired up. Uploads still succeed; the caller simply
// gets nothing to prefill.
type UnavailableTextExtractor struct{}

// NewUnavailableTextExtractor creates the stub.
func NewUnavailableTextExtractor() *UnavailableTextExtractor {
	return &UnavailableTextExtractor{}
}

// Extract implements port.TextExtractor.
func (e *UnavailableTextExtractor) Extract(context.Context, string, []byte) (model.ApplicantInput, bool, error) {
	return model.ApplicantInput{}, false, nil
}
