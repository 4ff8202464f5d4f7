package usecase

import (
	"context"
	"fmt"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/domain/port"
)

// ExtractApplicantUseCase pulls applicant fields out of an uploaded document
// so the caller can prefill a submission.
type ExtractApplicantUseCase struct {
	extractor port.TextExtractor
}

// NewExtractApplicantUseCase wires dependencies.
func NewExtractApplicantUseCase(extractor port.TextExtractor) *ExtractApplicantUseCase {
	return &ExtractApplicantUseCase{extractor: extractor}
}

// Execute runs extraction over the document. An unavailable extraction
// backend is reported in the response, not as an error.
func (uc *ExtractApplicantUseCase) Execute(ctx context.Context, filename string, data []byte) (dto.ExtractedFieldsResponse, error) {
	fields, ok, err := uc.extractor.Extract(ctx, filename, data)
	if err != nil {
		return dto.ExtractedFieldsResponse{}, fmt.Errorf("extract document: %w", err)
	}
	if !ok {
		return dto.ExtractedFieldsResponse{
			Available: false,
			Message:   "Document text extraction is not available in this deployment",
		}, nil
	}

	return dto.ExtractedFieldsResponse{
		Available: true,
		Name:      fields.Name,
		Mobile:    fields.Mobile,
		Email:     fields.Email,
		PAN:       fields.PAN,
		Income:    fields.MonthlyIncome,
	}, nil
}
