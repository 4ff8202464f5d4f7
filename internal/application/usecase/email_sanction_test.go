package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/usecase"
	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/port"
)

var defaultRelay = port.RelayConfig{
	Host:     "smtp.capfin.internal",
	Port:     587,
	Username: "letters",
	Password: "secret",
}

func newEmailFixture() (*issueFixture, *mockMailSender, *usecase.EmailSanctionUseCase) {
	f := newIssueFixture()
	sender := &mockMailSender{}
	uc := usecase.NewEmailSanctionUseCase(f.uc, sender, defaultRelay, f.publisher, nil, discardLogger())
	return f, sender, uc
}

func validEmailRequest() dto.EmailSanctionRequest {
	return dto.EmailSanctionRequest{IssueSanctionRequest: validIssueRequest()}
}

func TestEmailSanction_Execute(t *testing.T) {
	t.Run("mails the applicant over the default relay", func(t *testing.T) {
		f, sender, uc := newEmailFixture()

		resp, err := uc.Execute(context.Background(), validEmailRequest())

		require.NoError(t, err)
		assert.True(t, resp.Sent)
		assert.Contains(t, resp.Message, "asha@example.com")

		require.Len(t, sender.sent, 1)
		mail := sender.sent[0]
		assert.Equal(t, "asha@example.com", mail.To)
		assert.Equal(t, "Your Loan Sanction Letter - Capital Finance", mail.Subject)
		assert.Contains(t, mail.Body, "Asha Rao")
		assert.Equal(t, "Loan_Sanction_Letter.pdf", mail.AttachmentName)
		assert.NotEmpty(t, mail.Attachment)

		require.Len(t, sender.relays, 1)
		assert.Equal(t, defaultRelay, sender.relays[0])

		// SanctionIssued from the pipeline, then SanctionEmailed.
		require.Len(t, f.publisher.publishedEvents, 2)
		emailed, ok := f.publisher.publishedEvents[1].(event.SanctionEmailed)
		require.True(t, ok, "expected SanctionEmailed, got %T", f.publisher.publishedEvents[1])
		assert.True(t, emailed.Sent)
		assert.Equal(t, "asha@example.com", emailed.Recipient)
	})

	t.Run("honours explicit recipient, subject and relay", func(t *testing.T) {
		_, sender, uc := newEmailFixture()

		req := validEmailRequest()
		req.To = "advisor@example.com"
		req.Subject = "Sanction letter for review"
		req.Body = "See attachment."
		req.SMTP = dto.SMTPOverride{Host: "smtp.example.com", Port: 465, Username: "u", Password: "p"}

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, resp.Sent)

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "advisor@example.com", sender.sent[0].To)
		assert.Equal(t, "Sanction letter for review", sender.sent[0].Subject)
		assert.Equal(t, "See attachment.", sender.sent[0].Body)

		require.Len(t, sender.relays, 1)
		assert.Equal(t, "smtp.example.com", sender.relays[0].Host)
		assert.Equal(t, 465, sender.relays[0].Port)
	})

	t.Run("reports relay refusal as a result", func(t *testing.T) {
		f, sender, uc := newEmailFixture()
		sender.sendFunc = func(context.Context, port.RelayConfig, port.OutboundMail) error {
			return fmt.Errorf("535 authentication failed")
		}

		resp, err := uc.Execute(context.Background(), validEmailRequest())

		require.NoError(t, err)
		assert.False(t, resp.Sent)
		assert.Contains(t, resp.Message, "Dispatch failed")
		assert.Contains(t, resp.Message, "535")

		require.Len(t, f.publisher.publishedEvents, 2)
		emailed, ok := f.publisher.publishedEvents[1].(event.SanctionEmailed)
		require.True(t, ok)
		assert.False(t, emailed.Sent)
	})

	t.Run("propagates validation failures from the pipeline", func(t *testing.T) {
		_, sender, uc := newEmailFixture()

		req := validEmailRequest()
		req.AgreementAccepted = false

		_, err := uc.Execute(context.Background(), req)

		var vErr *usecase.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Empty(t, sender.sent)
	})
}
