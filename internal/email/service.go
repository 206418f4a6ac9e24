package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/courtside/pickleball-api/internal/config"
	"github.com/courtside/pickleball-api/internal/model"
)

// Service sends organizer-facing notifications for moderation decisions.
type Service interface {
	SendStatusUpdate(ctx context.Context, to, name string, status model.Status) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendStatusUpdate(ctx context.Context, to, name string, status model.Status) error {
	if to == "" {
		return nil
	}

	var subject, body string
	switch status {
	case model.StatusApproved:
		subject = fmt.Sprintf("%s is now listed", name)
		body = fmt.Sprintf("Good news! %s has been approved and is now visible in the public directory.", name)
	case model.StatusRejected:
		subject = fmt.Sprintf("Submission update for %s", name)
		body = fmt.Sprintf("Unfortunately %s was not approved for listing. Reply to this email if you have questions.", name)
	default:
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send status email: %w", err)
		}
		return nil
	}
}
