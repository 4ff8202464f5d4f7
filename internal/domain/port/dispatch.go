package port

import (
	"context"

	"github.com/capfin/sanction-service/internal/domain/event"
)

// RelayConfig identifies the SMTP relay used for a dispatch. A zero value
// means the deployment default relay.
type RelayConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// IsZero reports whether no relay was specified.
func (r RelayConfig) IsZero() bool {
	return r.Host == "" && r.Port == 0 && r.Username == "" && r.Password == ""
}

// OutboundMail is a single message with an optional attachment.
type OutboundMail struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// MailSender defines the port for dispatching mail over SMTP.
type MailSender interface {
	Send(ctx context.Context, relay RelayConfig, mail OutboundMail) error
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
