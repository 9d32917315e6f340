package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.renderPasswordResetEmail(resetURL)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Reset Your Password - FunRobin"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

const passwordResetTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 24px;">
  <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border: 3px solid #000; padding: 24px;">
    <h2 style="margin-top: 0;">Reset your FunRobin password</h2>
    <p>Someone (hopefully you) asked to reset the password for this account.</p>
    <p>
      <a href="{{.ResetURL}}"
         style="display: inline-block; background: #a855f7; color: #fff; padding: 12px 24px; text-decoration: none; font-weight: bold;">
        Reset Password
      </a>
    </p>
    <p>This link expires in one hour. If you didn't ask for a reset, ignore this email.</p>
  </div>
</body>
</html>`

// renderPasswordResetEmail renders the password reset HTML body
func (s *EmailService) renderPasswordResetEmail(resetURL string) (string, error) {
	tmpl, err := template.New("password_reset").Parse(passwordResetTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ ResetURL string }{ResetURL: resetURL}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildHTMLEmail assembles RFC 822 headers plus the HTML body
func (s *EmailService) buildHTMLEmail(to, subject, htmlContent string) []byte {
	headers := fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	return []byte(headers + htmlContent)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
