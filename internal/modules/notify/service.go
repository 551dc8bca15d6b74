package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/mailer"
)

// Service renders a transactional email for an order lifecycle event and
// hands it to the mail provider. Synchronous, best-effort: no queueing or
// delivery tracking here; the outbox owns retries.
type Service struct {
	mail     mailer.Service
	fromAddr string
	fromName string
	logger   *slog.Logger
}

func NewService(mail mailer.Service, fromAddr, fromName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{mail: mail, fromAddr: fromAddr, fromName: fromName, logger: logger}
}

func (s *Service) Send(ctx context.Context, p Payload) error {
	subject, html, err := Render(p)
	if err != nil {
		return err
	}

	email := mailer.Email{
		From:     s.fromAddr,
		FromName: s.fromName,
		To:       []string{p.Email},
		Subject:  subject,
		HTMLBody: html,
	}
	if err := s.mail.Send(ctx, email); err != nil {
		return fmt.Errorf("send %s email for order #%s: %w", p.Type, p.OrderNumber, err)
	}

	s.logger.InfoContext(ctx, "order email sent", "type", p.Type, "order_number", p.OrderNumber, "to", p.Email)
	return nil
}
