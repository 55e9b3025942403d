package mailer

import (
	"fmt"
	"io"
	"log/slog"

	gomail "gopkg.in/gomail.v2"
)

// Attachment is a binary payload attached to an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is an outgoing HTML email.
type Message struct {
	To         string
	ToName     string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// Mailer dispatches transactional email.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer submits messages through an SMTP relay.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	logger   *slog.Logger
}

// NewSMTPMailer creates a mailer for the given relay.
func NewSMTPMailer(host string, port int, user, password, from, fromName string, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(host, port, user, password),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

// Send submits the message, attaching the payload when present.
func (m *SMTPMailer) Send(msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", mail.FormatAddress(m.from, m.fromName))
	if msg.ToName != "" {
		mail.SetHeader("To", mail.FormatAddress(msg.To, msg.ToName))
	} else {
		mail.SetHeader("To", msg.To)
	}
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	if att := msg.Attachment; att != nil {
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		mail.Attach(att.Filename, settings...)
	}

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	m.logger.Info("email dispatched", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}
