package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/capfin/sanction-service/internal/application/dto"
	"github.com/capfin/sanction-service/internal/application/metrics"
	"github.com/capfin/sanction-service/internal/domain/event"
	"github.com/capfin/sanction-service/internal/domain/port"
)

const attachmentName = "Loan_Sanction_Letter.pdf"

// EmailSanctionUseCase issues a letter and dispatches it over SMTP. A relay
// refusal is reported as a result, never as an error: the letter exists
// whether or not the mail went out.
type EmailSanctionUseCase struct {
	issue        *IssueSanctionUseCase
	sender       port.MailSender
	defaultRelay port.RelayConfig
	publisher    port.EventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewEmailSanctionUseCase wires dependencies.
func NewEmailSanctionUseCase(
	issue *IssueSanctionUseCase,
	sender port.MailSender,
	defaultRelay port.RelayConfig,
	publisher port.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *EmailSanctionUseCase {
	return &EmailSanctionUseCase{
		issue:        issue,
		sender:       sender,
		defaultRelay: defaultRelay,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
	}
}

// Execute generates the letter and mails it. Validation failures propagate
// as *ValidationError from the issue step.
func (uc *EmailSanctionUseCase) Execute(ctx context.Context, req dto.EmailSanctionRequest) (dto.EmailDispatchResponse, error) {
	// 1. Produce the letter.
	sanction, err := uc.issue.Execute(ctx, req.IssueSanctionRequest)
	if err != nil {
		return dto.EmailDispatchResponse{}, err
	}

	// 2. Resolve recipient and relay. The applicant's own address is the
	// default recipient.
	to := req.To
	if to == "" {
		to = req.Email
	}
	subject := req.Subject
	if subject == "" {
		subject = "Your Loan Sanction Letter - Capital Finance"
	}
	body := req.Body
	if body == "" {
		body = fmt.Sprintf(
			"Dear %s,\n\nPlease find your provisional loan sanction letter attached.\n\nRegards,\nCapital Finance",
			req.Name,
		)
	}

	relay := port.RelayConfig{
		Host:     req.SMTP.Host,
		Port:     req.SMTP.Port,
		Username: req.SMTP.Username,
		Password: req.SMTP.Password,
	}
	if relay.IsZero() {
		relay = uc.defaultRelay
	}

	// 3. Dispatch. Failure is an outcome, not an error.
	sendErr := uc.sender.Send(ctx, relay, port.OutboundMail{
		To:             to,
		Subject:        subject,
		Body:           body,
		AttachmentName: attachmentName,
		Attachment:     sanction.DocumentPDF,
	})

	sent := sendErr == nil
	if err := uc.publisher.Publish(ctx, event.NewSanctionEmailed(sanction.ReferenceID, to, sent)); err != nil {
		uc.logger.Warn("publish email event failed", "reference_id", sanction.ReferenceID, "error", err)
	}

	if !sent {
		uc.logger.Warn("mail dispatch failed", "reference_id", sanction.ReferenceID, "to", to, "error", sendErr)
		uc.metrics.IncrementEmailDispatch("failed")
		return dto.EmailDispatchResponse{
			Sent:    false,
			Message: fmt.Sprintf("Dispatch failed: %v", sendErr),
		}, nil
	}

	uc.metrics.IncrementEmailDispatch("sent")
	return dto.EmailDispatchResponse{
		Sent:    true,
		Message: fmt.Sprintf("Sanction letter sent to %s", to),
	}, nil
}
