package email

import "miniticker/internal/shared/logger"

// NoopEmailService logs instead of sending. Used when email is disabled in
// configuration.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(log logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: log}
}

func (s *NoopEmailService) SendTicketAssignedEmail(to, managerName, ticketNumber, subject string) error {
	s.logger.Debugw("email disabled, skipping assignment notification", "to", to, "ticket", ticketNumber)
	return nil
}

func (s *NoopEmailService) SendTicketStatusEmail(to, ticketNumber, newStatus string) error {
	s.logger.Debugw("email disabled, skipping status notification", "to", to, "ticket", ticketNumber)
	return nil
}

func (s *NoopEmailService) SendWelcomeEmail(to, name, tempPassword string) error {
	s.logger.Debugw("email disabled, skipping welcome email", "to", to)
	return nil
}
