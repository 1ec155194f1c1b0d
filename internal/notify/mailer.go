package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/MrJamesThe3rd/intake/internal/submission"
)

type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer emails a rendered summary of each submission to the operator.
type Mailer struct {
	opts SMTPOptions
	send func(ctx context.Context, msg *mail.Msg) error
}

func NewMailer(opts SMTPOptions) *Mailer {
	m := &Mailer{opts: opts}
	m.send = m.dialAndSend

	return m
}

func (m *Mailer) Notify(ctx context.Context, s *submission.Submission) error {
	summary, err := Render(s)
	if err != nil {
		return err
	}

	msg, err := m.message(summary)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("sending summary for %s: %w", s.ID, err)
	}

	return nil
}

func (m *Mailer) message(s Summary) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(m.opts.From); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}

	if err := msg.To(m.opts.To); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}

	msg.Subject(s.Subject)
	msg.SetBodyString(mail.TypeTextPlain, s.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, s.HTML)

	return msg, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.opts.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}

	if m.opts.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.opts.Username),
			mail.WithPassword(m.opts.Password),
		)
	}

	client, err := mail.NewClient(m.opts.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
