package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/usecase"
	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/service"
	"github.com/capfin/sanction-service/internal/domain/valueobject"
)

const logoURL = "https://assets.example.com/letterhead.png"

type issueFixture struct {
	encoder   *mockSummaryEncoder
	renderer  *mockArtifactRenderer
	fetcher   *mockAssetFetcher
	ledger    *mockSanctionLedger
	publisher *mockEventPublisher
	uc        *usecase.IssueSanctionUseCase
}

func newIssueFixture() *issueFixture {
	f := &issueFixture{
		encoder:   &mockSummaryEncoder{},
		renderer:  &mockArtifactRenderer{},
		fetcher:   &mockAssetFetcher{},
		ledger:    &mockSanctionLedger{},
		publisher: &mockEventPublisher{},
	}
	f.uc = usecase.NewIssueSanctionUseCase(
		model.DefaultPolicy(),
		service.NewRiskScorer(),
		f.encoder,
		f.renderer,
		f.fetcher,
		logoURL,
		f.ledger,
		f.publisher,
		nil,
		discardLogger(),
	)
	return f
}

func validIssueRequest() dto.IssueSanctionRequest {
	return dto.IssueSanctionRequest{
		Name:              "Asha Rao",
		Mobile:            "+91 98765-43210",
		Email:             "asha@example.com",
		PAN:               "ABCDE1234F",
		MonthlyIncome:     decimal.NewFromInt(60000),
		LoanAmount:        decimal.NewFromInt(200000),
		AnnualRatePct:     decimal.NewFromFloat(12.75),
		TermMonths:        24,
		Purpose:           "Home Renovation",
		AgreementAccepted: true,
	}
}

func TestIssueSanction_Execute(t *testing.T) {
	t.Run("issues a letter end to end", func(t *testing.T) {
		f := newIssueFixture()

		resp, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ReferenceID)
		assert.InDelta(t, 9484.9, resp.Installment.InexactFloat64(), 0.01)
		assert.True(t, resp.ProcessingFee.Equal(decimal.NewFromInt(1769)), "fee = %s", resp.ProcessingFee)
		assert.True(t, resp.NetDisbursed.Equal(decimal.NewFromInt(198231)), "net = %s", resp.NetDisbursed)
		assert.Equal(t, "78.0", resp.RiskScore)
		assert.NotEmpty(t, resp.DocumentPDF)
		assert.Equal(t, []byte("qr-png"), resp.QRPNG)
		assert.Contains(t, resp.ShareMessage, "Asha Rao")
		assert.Contains(t, resp.ShareMessage, "200,000")
		assert.Contains(t, resp.WhatsAppLink, "https://wa.me/?text=")
		assert.NotContains(t, resp.WhatsAppLink, " ")
		assert.Empty(t, resp.Degradations)
		assert.Equal(t, "0xabc123", resp.LedgerTx)

		require.Len(t, f.ledger.sanctions, 1)
		assert.Equal(t, resp.ReferenceID, f.ledger.sanctions[0].ReferenceID())

		require.Len(t, f.publisher.publishedEvents, 1)
		issued, ok := f.publisher.publishedEvents[0].(event.SanctionIssued)
		require.True(t, ok, "expected SanctionIssued, got %T", f.publisher.publishedEvents[0])
		assert.Equal(t, resp.ReferenceID, issued.AggregateID())

		assert.Equal(t, []string{logoURL}, f.fetcher.fetchedURLs)
	})

	t.Run("reports every failing field in stable order", func(t *testing.T) {
		f := newIssueFixture()

		_, err := f.uc.Execute(context.Background(), dto.IssueSanctionRequest{
			Name:              "  ",
			Mobile:            "12345",
			Email:             "not-an-email",
			MonthlyIncome:     decimal.NewFromInt(40000),
			LoanAmount:        decimal.NewFromInt(1000),
			AnnualRatePct:     decimal.NewFromFloat(30),
			TermMonths:        13,
			Purpose:           "Yacht",
			AgreementAccepted: false,
		})

		var vErr *usecase.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{
			valueobject.FieldName,
			valueobject.FieldMobile,
			valueobject.FieldEmail,
			valueobject.FieldAgreement,
			valueobject.FieldLoanAmount,
			valueobject.FieldRate,
			valueobject.FieldTenure,
			valueobject.FieldPurpose,
		}, valueobject.FieldNames(vErr.Fields))

		// Pipeline halted before any computation.
		assert.Empty(t, f.renderer.rendered)
		assert.Empty(t, f.encoder.encoded)
		assert.Empty(t, f.ledger.sanctions)

		require.Len(t, f.publisher.publishedEvents, 1)
		rejected, ok := f.publisher.publishedEvents[0].(event.ApplicationRejected)
		require.True(t, ok, "expected ApplicationRejected, got %T", f.publisher.publishedEvents[0])
		assert.Len(t, rejected.Fields, 8)
	})

	t.Run("missing agreement is the only failure", func(t *testing.T) {
		f := newIssueFixture()

		req := validIssueRequest()
		req.AgreementAccepted = false

		resp, err := f.uc.Execute(context.Background(), req)

		var vErr *usecase.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{valueobject.FieldAgreement}, valueobject.FieldNames(vErr.Fields))
		assert.Empty(t, resp.DocumentPDF)
		assert.Empty(t, f.renderer.rendered)
	})

	t.Run("invalid identity number lowers the score but never blocks", func(t *testing.T) {
		f := newIssueFixture()

		req := validIssueRequest()
		req.PAN = "NOT-A-PAN"

		resp, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		// Base 50 + income_tier_mid 6 + ltv_low 18, no identity bonus.
		assert.Equal(t, "74.0", resp.RiskScore)
		assert.NotEmpty(t, resp.DocumentPDF)
	})

	t.Run("continues without logo when fetch fails", func(t *testing.T) {
		f := newIssueFixture()
		f.fetcher.fetchFunc = func(context.Context, string) ([]byte, error) {
			return nil, fmt.Errorf("connect timeout")
		}

		resp, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.Contains(t, resp.Degradations, "logo_unavailable")
		assert.NotEmpty(t, resp.DocumentPDF)
		assert.Nil(t, f.renderer.lastLogo)
	})

	t.Run("continues without QR when encoding fails", func(t *testing.T) {
		f := newIssueFixture()
		f.encoder.encodeFunc = func(model.SanctionLetter) ([]byte, error) {
			return nil, fmt.Errorf("payload too long")
		}

		resp, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.Contains(t, resp.Degradations, "qr_embed_skipped")
		assert.Empty(t, resp.QRPNG)
		assert.Nil(t, f.renderer.lastQR)
		assert.NotEmpty(t, resp.DocumentPDF)
	})

	t.Run("collects degradations reported by the renderer", func(t *testing.T) {
		f := newIssueFixture()
		f.renderer.renderFunc = func(model.SanctionLetter, []byte, []byte) ([]byte, []valueobject.Degradation, error) {
			return []byte("%PDF-1.4 degraded"), []valueobject.Degradation{valueobject.DegradationQREmbedSkipped}, nil
		}

		resp, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.Equal(t, []string{"qr_embed_skipped"}, resp.Degradations)
	})

	t.Run("render failure fails the call", func(t *testing.T) {
		f := newIssueFixture()
		f.renderer.renderFunc = func(model.SanctionLetter, []byte, []byte) ([]byte, []valueobject.Degradation, error) {
			return nil, nil, fmt.Errorf("page overflow")
		}

		_, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "render letter")
		var vErr *usecase.ValidationError
		assert.False(t, errors.As(err, &vErr))
	})

	t.Run("ledger failure does not block the letter", func(t *testing.T) {
		f := newIssueFixture()
		f.ledger.recordSanctionFunc = func(context.Context, model.SanctionLetter) (string, error) {
			return "", fmt.Errorf("ledger unreachable")
		}

		resp, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.Empty(t, resp.LedgerTx)
		assert.NotEmpty(t, resp.DocumentPDF)
	})

	t.Run("publish failure does not block the letter", func(t *testing.T) {
		f := newIssueFixture()
		f.publisher.publishFunc = func(context.Context, ...event.DomainEvent) error {
			return fmt.Errorf("broker unavailable")
		}

		resp, err := f.uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.DocumentPDF)
	})

	t.Run("skips the logo fetch when no URL is configured", func(t *testing.T) {
		f := newIssueFixture()
		uc := usecase.NewIssueSanctionUseCase(
			model.DefaultPolicy(),
			service.NewRiskScorer(),
			f.encoder,
			f.renderer,
			f.fetcher,
			"",
			f.ledger,
			f.publisher,
			nil,
			discardLogger(),
		)

		resp, err := uc.Execute(context.Background(), validIssueRequest())

		require.NoError(t, err)
		assert.Empty(t, f.fetcher.fetchedURLs)
		assert.Empty(t, resp.Degradations)
	})
}
