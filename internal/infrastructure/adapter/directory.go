// Package adapter provides the simulated capability backends the service
// runs against when no real directory, bureau, model host or ledger is
// wired up.
package adapter

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/port"
)

// InMemoryDirectory serves a small synthetic customer book. It backs both
// the customer lookup and the bureau lookup; maps are built once and only
// read afterwards, so lookups are safe for concurrent use.
type InMemoryDirectory struct {
	byMobile map[string]model.CustomerProfile
	byPAN    map[string]int
	offers   map[string][]model.Offer
}

// NewInMemoryDirectory seeds the synthetic book.
func NewInMemoryDirectory() *InMemoryDirectory {
	d := &InMemoryDirectory{
		byMobile: make(map[string]model.CustomerProfile),
		byPAN:    make(map[string]int),
		offers:   make(map[string][]model.Offer),
	}

	seed := []struct {
		profile model.CustomerProfile
		score   int
		offers  []model.Offer
	}{
		{
			profile: model.CustomerProfile{ID: "cust-001", Name: "Rahul Sharma", Mobile: "9876543210", PAN: "ABCDE1234F", MonthlyIncome: decimal.NewFromInt(65000)},
			score:   750,
			offers:  []model.Offer{model.NewOffer(decimal.NewFromInt(500000), decimal.NewFromFloat(10.5), 60)},
		},
		{
			profile: model.CustomerProfile{ID: "cust-002", Name: "Priya Nair", Mobile: "9123456780", PAN: "FGHIJ5678K", MonthlyIncome: decimal.NewFromInt(120000)},
			score:   804,
			offers: []model.Offer{
				model.NewOffer(decimal.NewFromInt(800000), decimal.NewFromFloat(9.75), 48),
				model.NewOffer(decimal.NewFromInt(300000), decimal.NewFromFloat(11.25), 36),
			},
		},
		{
			profile: model.CustomerProfile{ID: "cust-003", Name: "Arjun Mehta", Mobile: "9988776655", PAN: "KLMNO9012P", MonthlyIncome: decimal.NewFromInt(45000)},
			score:   695,
			offers:  []model.Offer{model.NewOffer(decimal.NewFromInt(250000), decimal.NewFromFloat(12.5), 36)},
		},
		{
			profile: model.CustomerProfile{ID: "cust-004", Name: "Meera Iyer", Mobile: "9765432109", PAN: "QRSTU3456V", MonthlyIncome: decimal.NewFromInt(90000)},
			score:   790,
			offers:  []model.Offer{model.NewOffer(decimal.NewFromInt(400000), decimal.NewFromFloat(9.5), 48)},
		},
	}

	for _, s := range seed {
		d.byMobile[s.profile.Mobile] = s.profile
		d.byPAN[s.profile.PAN] = s.score
		d.offers[s.profile.ID] = s.offers
	}
	return d
}

// ByMobile implements port.CustomerLookup.
func (d *InMemoryDirectory) ByMobile(_ context.Context, mobile string) (model.CustomerProfile, error) {
	profile, ok := d.byMobile[mobile]
	if !ok {
		return model.CustomerProfile{}, fmt.Errorf("customer %s: %w", mobile, port.ErrNotFound)
	}
	return profile, nil
}

// OffersFor implements port.CustomerLookup.
func (d *InMemoryDirectory) OffersFor(_ context.Context, customerID string) ([]model.Offer, error) {
	offers, ok := d.offers[customerID]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", customerID, port.ErrNotFound)
	}
	return offers, nil
}

// ByPAN implements port.ScoreLookup.
func (d *InMemoryDirectory) ByPAN(_ context.Context, pan string) (int, error) {
	score, ok := d.byPAN[pan]
	if !ok {
		return 0, fmt.Errorf("pan %s: %w", pan, port.ErrNotFound)
	}
	return score, nil
}
