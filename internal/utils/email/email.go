package email

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/Dan9191/unidash/internal/config"
	"github.com/Dan9191/unidash/internal/export"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.smtpSend
	return s
}

func (s *Sender) smtpSend(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return e.Send(addr, auth)
}

// SendBalanceSheet mails the CSV balance sheet to the user as an attachment
func (s *Sender) SendBalanceSheet(to, name string, sheet []byte) error {
	if to == "" {
		return fmt.Errorf("no recipient address")
	}
	if name == "" {
		name = to
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your UniDash balance sheet"
	e.Text = []byte(fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your balance sheet is attached as %s.\n"+
			"It lists every income and expense entry recorded in your dashboard.\n"+
			"\nBest regards,\nUniDash",
		name, export.FileName,
	))
	if _, err := e.Attach(bytes.NewReader(sheet), export.FileName, "text/csv"); err != nil {
		return fmt.Errorf("failed to attach balance sheet: %w", err)
	}

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send balance sheet to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
