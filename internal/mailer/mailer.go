// Package mailer sends the reply notification emails.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/wnjuguna/portfolio/internal/config"
	"github.com/wnjuguna/portfolio/internal/errs"
	"github.com/wnjuguna/portfolio/models"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a message, returning an error on delivery failure. The
// caller decides what a failure means; nothing here retries.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers over SMTP with opportunistic TLS.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTP(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	email := mail.NewMsg()
	if err := email.From(m.cfg.From); err != nil {
		return errs.Wrap(err, "set from address")
	}
	if err := email.To(msg.To); err != nil {
		return errs.Wrap(err, "set recipient")
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return errs.Wrap(err, "create smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return errs.Wrap(err, "send mail")
	}
	return nil
}

// ReplyEmail builds the notification sent to a contact message sender. The
// body quotes the original message above the admin's reply.
func ReplyEmail(msg models.ContactMessage, replyText string) Message {
	body := fmt.Sprintf(`Hello %s,

Thank you for reaching out! Here's my reply to your message:

---
YOUR MESSAGE:
%s

---
MY REPLY:
%s

---

If you have any further questions, feel free to contact me again.

Best regards,
Wilson Maina
Software Engineering Student
Kirinyaga University`, msg.Name, msg.Message, replyText)

	return Message{
		To:      msg.Email,
		Subject: "Re: Your Message from Wilson Maina",
		Body:    body,
	}
}
