package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // base URL for links in email bodies
}

// SMTPEmailService sends helpdesk notifications over SMTP. It satisfies both
// the reply notifier and welcome notifier interfaces of the use case layer.
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

// NotifyReply tells the ticket owner that staff replied to their request.
func (s *SMTPEmailService) NotifyReply(ctx context.Context, recipient string, requestNumber uint, responseText string) error {
	requestURL := fmt.Sprintf("%s/requests/%d", s.config.BaseURL, requestNumber)

	subject := fmt.Sprintf("New reply on request #%d", requestNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your request #%d has a new reply</h2>
			<p>%s</p>
			<p><a href="%s">View your request</a></p>
		</body>
		</html>
	`, requestNumber, responseText, requestURL)

	plainBody := fmt.Sprintf(`
Your request #%d has a new reply:

%s

View your request: %s
	`, requestNumber, responseText, requestURL)

	return s.sendEmail(recipient, subject, htmlBody, plainBody)
}

// NotifyWelcome greets a freshly registered user.
func (s *SMTPEmailService) NotifyWelcome(recipient, name string) error {
	subject := "Welcome to the helpdesk"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account has been created. You can now file support requests and track their progress.</p>
			<p><a href="%s">Open the helpdesk</a></p>
		</body>
		</html>
	`, name, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your account has been created. You can now file support requests and track their progress.

Open the helpdesk: %s
	`, name, s.config.BaseURL)

	return s.sendEmail(recipient, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
