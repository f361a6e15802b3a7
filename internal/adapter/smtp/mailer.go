package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"mailflow/internal/config/configs"
	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// Mailer delivers campaign emails through an SMTP relay.
type Mailer struct {
	client *mail.Client
}

var _ port.Mailer = (*Mailer)(nil)

// NewMailer configures a client for cfg. No connection is made until the
// first Send. Authentication is only negotiated when a username is set.
func NewMailer(cfg configs.SMTP) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{client: client}, nil
}

// Send delivers msg as an HTML email over a fresh connection.
func (m *Mailer) Send(ctx context.Context, msg domain.Email) error {
	out := mail.NewMsg()
	if err := out.From(msg.From); err != nil {
		return &port.SendError{To: msg.To, Err: fmt.Errorf("sender: %w", err)}
	}
	if err := out.To(msg.To); err != nil {
		return &port.SendError{To: msg.To, Err: fmt.Errorf("recipient: %w", err)}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return &port.SendError{To: msg.To, Err: err}
	}
	return nil
}
