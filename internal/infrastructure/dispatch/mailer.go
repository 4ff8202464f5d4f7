// Package dispatch sends sanction letters out over SMTP.
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/capfin/sanction-service/internal/domain/port"
)

const dialTimeout = 20 * time.Second

// SMTPMailSender delivers mail through the relay named in each call. The
// relay host, port and credentials arrive per dispatch because callers may
// override the deployment default.
type SMTPMailSender struct{}

// NewSMTPMailSender creates the sender.
func NewSMTPMailSender() *SMTPMailSender {
	return &SMTPMailSender{}
}

// Send builds the message and delivers it over STARTTLS with plain auth,
// matching what corporate relays expect on port 587. The relay username
// doubles as the sender address.
func (s *SMTPMailSender) Send(ctx context.Context, relay port.RelayConfig, out port.OutboundMail) error {
	if relay.Host == "" {
		return fmt.Errorf("smtp relay not configured")
	}

	msg, err := buildMessage(relay, out)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(relay.Host,
		mail.WithPort(relay.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(relay.Username),
		mail.WithPassword(relay.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func buildMessage(relay port.RelayConfig, out port.OutboundMail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(relay.Username); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(out.To); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(out.Subject)
	msg.SetBodyString(mail.TypeTextPlain, out.Body)
	if len(out.Attachment) > 0 {
		if err := msg.AttachReader(out.AttachmentName, bytes.NewReader(out.Attachment)); err != nil {
			return nil, fmt.Errorf("attach document: %w", err)
		}
	}
	return msg, nil
}
