package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/metrics"
	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/port"
	"github.com/capfin/sanction-service/internal/domain/service"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// ValidationError carries the ordered field failures of a rejected request.
// The pipeline halts before any computation when it is returned.
type ValidationError struct {
	Fields []valueobject.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(valueobject.FieldNames(e.Fields), ", ")
}

// IssueSanctionUseCase runs the full pipeline for one submission: validate,
// price, score, encode the QR summary, render the letter, record it on the
// ledger and publish the domain events.
type IssueSanctionUseCase struct {
	policy    model.LendingPolicy
	scorer    *service.RiskScorer
	encoder   port.SummaryEncoder
	renderer  port.ArtifactRenderer
	assets    port.AssetFetcher
	logoURL   string
	ledger    port.SanctionLedger
	publisher port.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewIssueSanctionUseCase wires dependencies.
func NewIssueSanctionUseCase(
	policy model.LendingPolicy,
	scorer *service.RiskScorer,
	encoder port.SummaryEncoder,
	renderer port.ArtifactRenderer,
	assets port.AssetFetcher,
	logoURL string,
	ledger port.SanctionLedger,
	publisher port.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *IssueSanctionUseCase {
	return &IssueSanctionUseCase{
		policy:    policy,
		scorer:    scorer,
		encoder:   encoder,
		renderer:  renderer,
		assets:    assets,
		logoURL:   logoURL,
		ledger:    ledger,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Execute produces the sanction letter for one application. It returns a
// *ValidationError when the input is rejected; any other error means the
// letter could not be produced at all. Degraded assets (missing logo,
// unusable QR) never fail the call.
func (uc *IssueSanctionUseCase) Execute(ctx context.Context, req dto.IssueSanctionRequest) (dto.SanctionResponse, error) {
	start := time.Now()

	// 1. Validate and normalize the applicant input.
	applicant, fieldErrs := model.NewApplicantRecord(model.ApplicantInput{
		Name:          req.Name,
		Mobile:        req.Mobile,
		Email:         req.Email,
		PAN:           req.PAN,
		MonthlyIncome: req.MonthlyIncome,
		Agreed:        req.AgreementAccepted,
	})

	// 2. Validate and price the requested terms. Both rule sets run so the
	// caller sees every failing field in one pass.
	terms, termErrs := model.NewLoanTerms(uc.policy, req.LoanAmount, req.AnnualRatePct, req.TermMonths, req.Purpose)
	fieldErrs = append(fieldErrs, termErrs...)

	if len(fieldErrs) > 0 {
		uc.recordRejection(ctx, req.Mobile, fieldErrs)
		return dto.SanctionResponse{}, &ValidationError{Fields: fieldErrs}
	}

	// 3. Score eligibility.
	assessment := uc.scorer.Score(service.ScoreInput{
		MonthlyIncome:    applicant.MonthlyIncome(),
		LoanAmount:       terms.Principal(),
		IdentityVerified: applicant.PANValid(),
	})

	// 4. Issue the letter aggregate.
	letter, err := model.NewSanctionLetter(applicant, terms, assessment, time.Now().UTC())
	if err != nil {
		return dto.SanctionResponse{}, fmt.Errorf("issue letter: %w", err)
	}

	// 5. Encode the QR summary. An encode failure skips the QR, it does not
	// block the letter.
	var degradations []valueobject.Degradation
	qr, err := uc.encoder.Encode(letter)
	if err != nil {
		uc.logger.Warn("summary encode failed, letter continues without QR",
			"reference_id", letter.ReferenceID(), "error", err)
		degradations = append(degradations, valueobject.DegradationQREmbedSkipped)
		qr = nil
	}

	// 6. Best-effort letterhead fetch.
	var logo []byte
	if uc.logoURL != "" {
		logo, err = uc.assets.Fetch(ctx, uc.logoURL)
		if err != nil {
			uc.logger.Warn("letterhead fetch failed, letter continues without logo",
				"url", uc.logoURL, "error", err)
			degradations = append(degradations, valueobject.DegradationLogoUnavailable)
			logo = nil
		}
	}

	// 7. Render the document.
	document, renderDegradations, err := uc.renderer.Render(letter, qr, logo)
	if err != nil {
		return dto.SanctionResponse{}, fmt.Errorf("render letter: %w", err)
	}
	degradations = append(degradations, renderDegradations...)

	// 8. Record the sanction on the ledger. The letter stands even when the
	// ledger is unreachable.
	ledgerTx, err := uc.ledger.RecordSanction(ctx, letter)
	if err != nil {
		uc.logger.Warn("ledger record failed", "reference_id", letter.ReferenceID(), "error", err)
		ledgerTx = ""
	}

	// 9. Publish domain events.
	if err := uc.publisher.Publish(ctx, letter.DomainEvents()...); err != nil {
		uc.logger.Warn("publish events failed", "reference_id", letter.ReferenceID(), "error", err)
	}

	uc.metrics.IncrementIssued()
	uc.metrics.ObserveRenderLatency(time.Since(start))

	message := shareMessage(letter)
	return dto.SanctionResponse{
		ReferenceID:   letter.ReferenceID(),
		Installment:   terms.Installment(),
		ProcessingFee: terms.ProcessingFee(),
		NetDisbursed:  terms.NetDisbursed(),
		RiskScore:     assessment.Score().StringFixed(1),
		DocumentPDF:   document,
		QRPNG:         qr,
		ShareMessage:  message,
		WhatsAppLink:  whatsappLink("", message),
		Degradations:  valueobject.DegradationStrings(degradations),
		LedgerTx:      ledgerTx,
	}, nil
}

func (uc *IssueSanctionUseCase) recordRejection(ctx context.Context, rawMobile string, errs []valueobject.FieldError) {
	fields := valueobject.FieldNames(errs)
	for _, field := range fields {
		uc.metrics.IncrementValidationFailure(field)
	}

	if err := uc.publisher.Publish(ctx, event.NewApplicationRejected(model.NormalizeMobile(rawMobile), fields)); err != nil {
		uc.logger.Warn("publish rejection event failed", "error", err)
	}
}
