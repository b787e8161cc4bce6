// Package email sends transactional notifications over SMTP. Delivery is
// best effort; ticket mutations never fail because mail did not go out.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service is the notification contract the application layer depends on.
type Service interface {
	SendTicketAssignedEmail(to, managerName, ticketNumber, subject string) error
	SendTicketStatusEmail(to, ticketNumber, newStatus string) error
	SendWelcomeEmail(to, name, tempPassword string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) SendTicketAssignedEmail(to, managerName, ticketNumber, subject string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketNumber)

	mailSubject := fmt.Sprintf("Ticket %s assigned to you", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket assigned</h2>
			<p>Hi %s,</p>
			<p>Ticket <strong>%s</strong> ("%s") has been assigned to you.</p>
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, managerName, ticketNumber, subject, ticketURL)

	plainBody := fmt.Sprintf(`Hi %s,

Ticket %s ("%s") has been assigned to you.

Open it at: %s
`, managerName, ticketNumber, subject, ticketURL)

	return s.sendEmail(to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusEmail(to, ticketNumber, newStatus string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketNumber)

	mailSubject := fmt.Sprintf("Ticket %s is now %s", ticketNumber, newStatus)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket update</h2>
			<p>Your ticket <strong>%s</strong> moved to status <strong>%s</strong>.</p>
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, ticketNumber, newStatus, ticketURL)

	plainBody := fmt.Sprintf(`Your ticket %s moved to status %s.

Open it at: %s
`, ticketNumber, newStatus, ticketURL)

	return s.sendEmail(to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendWelcomeEmail(to, name, tempPassword string) error {
	loginURL := fmt.Sprintf("%s/login", s.config.BaseURL)

	mailSubject := "Your help desk account"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s</h2>
			<p>An account has been created for you.</p>
			<p>Temporary password: <strong>%s</strong></p>
			<p>You will be asked to change it on first sign-in.</p>
			<p><a href="%s">Sign in</a></p>
		</body>
		</html>
	`, name, tempPassword, loginURL)

	plainBody := fmt.Sprintf(`Welcome, %s

An account has been created for you.
Temporary password: %s
You will be asked to change it on first sign-in.

Sign in at: %s
`, name, tempPassword, loginURL)

	return s.sendEmail(to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
