package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/wneessen/go-mail"

	"github.com/teamcal/teamcal-api/internal/config"
	"github.com/teamcal/teamcal-api/internal/domain"
)

// Message is one outbound digest mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer dispatches a single digest message. Implementations wrap
// transport failures in domain.ErrDelivery.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers mail over an authenticated STARTTLS relay using the
// externally supplied sender credentials. Transient failures are retried a
// bounded number of times with exponential backoff.
type SMTPMailer struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer from the mail configuration.
func NewSMTPMailer(cfg config.MailConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		logger: logger.With("component", "smtp_mailer"),
	}
}

// Send builds and dispatches msg. The error, if any, wraps
// domain.ErrDelivery so the scheduler can classify it without inspecting
// transport details.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out := mail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return fmt.Errorf("%w: invalid sender %q: %v", domain.ErrDelivery, m.cfg.From, err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %v", domain.ErrDelivery, msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("%w: creating SMTP client: %v", domain.ErrDelivery, err)
	}

	backoff := retry.WithMaxRetries(uint64(m.cfg.MaxRetries),
		retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.DialAndSendWithContext(ctx, out); err != nil {
			m.logger.Warn("digest send attempt failed",
				"to", msg.To,
				"error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: sending to %s: %v", domain.ErrDelivery, msg.To, err)
	}
	return nil
}
