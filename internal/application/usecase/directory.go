package usecase

import (
	"context"
	"fmt"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/port"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

// GetCustomerUseCase reads one profile from the customer directory.
type GetCustomerUseCase struct {
	customers port.CustomerLookup
}

// NewGetCustomerUseCase wires dependencies.
func NewGetCustomerUseCase(customers port.CustomerLookup) *GetCustomerUseCase {
	return &GetCustomerUseCase{customers: customers}
}

// Execute retrieves the profile registered under a mobile.
func (uc *GetCustomerUseCase) Execute(ctx context.Context, rawMobile string) (model.CustomerProfile, error) {
	mobile := model.NormalizeMobile(rawMobile)
	if len(mobile) != 10 {
		return model.CustomerProfile{}, &ValidationError{Fields: []valueobject.FieldError{
			{Field: valueobject.FieldMobile, Reason: "Mobile must have 10 digits"},
		}}
	}

	profile, err := uc.customers.ByMobile(ctx, mobile)
	if err != nil {
		return model.CustomerProfile{}, fmt.Errorf("customer lookup: %w", err)
	}
	return profile, nil
}

// GetCreditScoreUseCase reads one bureau score.
type GetCreditScoreUseCase struct {
	bureau port.ScoreLookup
}

// NewGetCreditScoreUseCase wires dependencies.
func NewGetCreditScoreUseCase(bureau port.ScoreLookup) *GetCreditScoreUseCase {
	return &GetCreditScoreUseCase{bureau: bureau}
}

// Execute retrieves the bureau score registered under a PAN.
func (uc *GetCreditScoreUseCase) Execute(ctx context.Context, rawPAN string) (dto.CreditScoreResponse, error) {
	pan := model.NormalizePAN(rawPAN)

	score, err := uc.bureau.ByPAN(ctx, pan)
	if err != nil {
		return dto.CreditScoreResponse{}, fmt.Errorf("bureau lookup: %w", err)
	}
	return dto.CreditScoreResponse{PAN: pan, Score: score}, nil
}

// GetOffersUseCase reads the standing offers for a customer.
type GetOffersUseCase struct {
	customers port.CustomerLookup
}

// NewGetOffersUseCase wires dependencies.
func NewGetOffersUseCase(customers port.CustomerLookup) *GetOffersUseCase {
	return &GetOffersUseCase{customers: customers}
}

// Execute retrieves the offers held against a customer ID.
func (uc *GetOffersUseCase) Execute(ctx context.Context, customerID string) (dto.OffersResponse, error) {
	offers, err := uc.customers.OffersFor(ctx, customerID)
	if err != nil {
		return dto.OffersResponse{}, fmt.Errorf("offer lookup: %w", err)
	}

	resp := dto.OffersResponse{CustomerID: customerID, Offers: make([]dto.OfferResponse, 0, len(offers))}
	for _, offer := range offers {
		resp.Offers = append(resp.Offers, dto.ToOfferResponse(offer))
	}
	return resp, nil
}
