package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventsmanager/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendEventInvitation renders the invitation and mails it to the invited developer.
func (s *emailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("event invitation data is nil")
	}
	msg, err := s.renderer.RenderEventInvitation(data)
	if err != nil {
		return fmt.Errorf("failed to render event invitation: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, msg.Subject, msg.HTML, msg.Text); err != nil {
		return fmt.Errorf("failed to send event invitation email: %w", err)
	}
	s.logger.InfoContext(ctx, "event invitation sent", "to", data.Email, "event_id", data.EventID)
	return nil
}
