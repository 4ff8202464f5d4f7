package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/port"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Mock implementations ---

type mockSummaryEncoder struct {
	encodeFunc func(letter model.SanctionLetter) ([]byte, error)
	encoded    []model.SanctionLetter
}

func (m *mockSummaryEncoder) Encode(letter model.SanctionLetter) ([]byte, error) {
	m.encoded = append(m.encoded, letter)
	if m.encodeFunc != nil {
		return m.encodeFunc(letter)
	}
	return []byte("qr-png"), nil
}

type mockArtifactRenderer struct {
	renderFunc func(letter model.SanctionLetter, qrPNG, logoPNG []byte) ([]byte, []valueobject.Degradation, error)
	rendered   []model.SanctionLetter
	lastQR     []byte
	lastLogo   []byte
}

func (m *mockArtifactRenderer) Render(letter model.SanctionLetter, qrPNG, logoPNG []byte) ([]byte, []valueobject.Degradation, error) {
	m.rendered = append(m.rendered, letter)
	m.lastQR = qrPNG
	m.lastLogo = logoPNG
	if m.renderFunc != nil {
		return m.renderFunc(letter, qrPNG, logoPNG)
	}
	return []byte("%PDF-1.4 stub document"), nil, nil
}

type mockAssetFetcher struct {
	fetchFunc   func(ctx context.Context, url string) ([]byte, error)
	fetchedURLs []string
}

func (m *mockAssetFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.fetchedURLs = append(m.fetchedURLs, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return []byte("logo-bytes"), nil
}

type mockSanctionLedger struct {
	recordSanctionFunc func(ctx context.Context, letter model.SanctionLetter) (string, error)
	recordAdvisoryFunc func(ctx context.Context, customerID, decision string) (string, error)
	sanctions          []model.SanctionLetter
	advisories         []string
}

func (m *mockSanctionLedger) RecordSanction(ctx context.Context, letter model.SanctionLetter) (string, error) {
	if m.recordSanctionFunc != nil {
		return m.recordSanctionFunc(ctx, letter)
	}
	m.sanctions = append(m.sanctions, letter)
	return "0xabc123", nil
}

func (m *mockSanctionLedger) RecordAdvisory(ctx context.Context, customerID, decision string) (string, error) {
	if m.recordAdvisoryFunc != nil {
		return m.recordAdvisoryFunc(ctx, customerID, decision)
	}
	m.advisories = append(m.advisories, customerID+":"+decision)
	return "0xdef456", nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockCustomerLookup struct {
	byMobileFunc  func(ctx context.Context, mobile string) (model.CustomerProfile, error)
	offersForFunc func(ctx context.Context, customerID string) ([]model.Offer, error)
}

func (m *mockCustomerLookup) ByMobile(ctx context.Context, mobile string) (model.CustomerProfile, error) {
	if m.byMobileFunc != nil {
		return m.byMobileFunc(ctx, mobile)
	}
	return model.CustomerProfile{
		ID:            "cust-001",
		Name:          "Rahul Sharma",
		Mobile:        mobile,
		PAN:           "ABCDE1234F",
		MonthlyIncome: decimal.NewFromInt(65000),
	}, nil
}

func (m *mockCustomerLookup) OffersFor(ctx context.Context, customerID string) ([]model.Offer, error) {
	if m.offersForFunc != nil {
		return m.offersForFunc(ctx, customerID)
	}
	return nil, nil
}

type mockScoreLookup struct {
	byPANFunc func(ctx context.Context, pan string) (int, error)
}

func (m *mockScoreLookup) ByPAN(ctx context.Context, pan string) (int, error) {
	if m.byPANFunc != nil {
		return m.byPANFunc(ctx, pan)
	}
	return 750, nil
}

type mockApprovalPredictor struct {
	predictFunc func(ctx context.Context, features map[string]float64) (float64, error)
}

func (m *mockApprovalPredictor) Predict(ctx context.Context, features map[string]float64) (float64, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, features)
	}
	return 0.75, nil
}

type mockMailSender struct {
	sendFunc func(ctx context.Context, relay port.RelayConfig, mail port.OutboundMail) error
	sent     []port.OutboundMail
	relays   []port.RelayConfig
}

func (m *mockMailSender) Send(ctx context.Context, relay port.RelayConfig, mail port.OutboundMail) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, relay, mail)
	}
	m.sent = append(m.sent, mail)
	m.relays = append(m.relays, relay)
	return nil
}

type mockTextExtractor struct {
	extractFunc func(ctx context.Context, filename string, data []byte) (model.ApplicantInput, bool, error)
}

func (m *mockTextExtractor) Extract(ctx context.Context, filename string, data []byte) (model.ApplicantInput, bool, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, filename, data)
	}
	return model.ApplicantInput{}, false, nil
}
