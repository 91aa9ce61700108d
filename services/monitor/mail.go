package monitor

import (
	"context"
	"fmt"
	"net/smtp"
	"sessionwatch/lib/scrapers/organiser"
	"sessionwatch/lib/timezone"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel/codes"
)

type SmtpConfig struct {
	Server       string
	Port         int
	EmailAddress string
	Password     string
}

// Mailer delivers the one-shot alert for a qualifying session.
type Mailer interface {
	SendAlert(ctx context.Context, session organiser.Session, link string) error
}

// EmailMailer sends the alert over SMTP to a fixed recipient list.
type EmailMailer struct {
	smtp       SmtpConfig
	recipients []string
	clock      timezone.Clock
}

func NewEmailMailer(config SmtpConfig, recipients []string, clock timezone.Clock) EmailMailer {
	return EmailMailer{
		smtp:       config,
		recipients: recipients,
		clock:      clock,
	}
}

func (m EmailMailer) SendAlert(ctx context.Context, session organiser.Session, link string) error {
	ctx, span := tracer.Start(ctx, "mailer:SendAlert")
	defer span.End()

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Session Watch <%s>", m.smtp.EmailAddress)
	mail.To = m.recipients
	mail.Subject = fmt.Sprintf(
		"Session alert: %d/%d signups!",
		session.CurrentSignups,
		session.MaxSignups,
	)

	body := fmt.Sprintf(`Hi,

A Saturday session has reached %d/%d signups:

%s

Sign up here: %s

— Session Watch
(checked at %s)`,
		session.CurrentSignups,
		session.MaxSignups,
		session.Description,
		link,
		m.clock.Now().Format(time.DateTime),
	)
	mail.Text = []byte(body)

	err := mail.Send(
		fmt.Sprintf("%s:%d", m.smtp.Server, m.smtp.Port),
		smtp.PlainAuth("", m.smtp.EmailAddress, m.smtp.Password, m.smtp.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(fmt.Sprintf("%s:%d", m.smtp.Server, m.smtp.Port), nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}

	return nil
}
