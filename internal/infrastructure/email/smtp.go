package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// SMTPNotificationService delivers reminder emails over SMTP. A delivery
// failure is reported to the caller; it is the caller's decision whether
// the surrounding workflow continues.
type SMTPNotificationService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotificationService(config SMTPConfig) *SMTPNotificationService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotificationService{
		config: config,
		dialer: dialer,
	}
}

// SendSubscriptionReminder emails the customer an upcoming-delivery notice
// with one confirmation link per possible response, all carrying the same
// token. The context bounds the SMTP exchange.
func (s *SMTPNotificationService) SendSubscriptionReminder(
	ctx context.Context,
	to string,
	recipientName string,
	productName string,
	deliveryDate time.Time,
	expiresAt time.Time,
	token string,
) error {
	landingURL := fmt.Sprintf("%s/confirmations/%s", s.config.BaseURL, token)
	continueURL := fmt.Sprintf("%s?action=continue", landingURL)
	pauseURL := fmt.Sprintf("%s?action=pause", landingURL)
	cancelURL := fmt.Sprintf("%s?action=cancel", landingURL)

	dateText := deliveryDate.Format("January 2, 2006")
	expiryText := expiresAt.Format("January 2, 2006")
	subject := fmt.Sprintf("Your %s delivery is coming up on %s", productName, dateText)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>Your next delivery of <strong>%s</strong> is scheduled for <strong>%s</strong>.</p>
			<p>No action is needed if you'd like it to ship as planned. You can also:</p>
			<p>
				<a href="%s">Confirm this delivery</a> ·
				<a href="%s">Pause my subscription</a> ·
				<a href="%s">Cancel my subscription</a>
			</p>
			<p>Or manage this delivery here:</p>
			<p>%s</p>
			<p>This link expires on %s.</p>
		</body>
		</html>
	`, recipientName, productName, dateText, continueURL, pauseURL, cancelURL, landingURL, expiryText)

	plainBody := fmt.Sprintf(`
Hi %s,

Your next delivery of %s is scheduled for %s.

No action is needed if you'd like it to ship as planned.

Confirm this delivery: %s
Pause my subscription: %s
Cancel my subscription: %s

This link expires on %s.
	`, recipientName, productName, dateText, continueURL, pauseURL, cancelURL, expiryText)

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPNotificationService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	// gomail has no context support; bound the send so a wedged SMTP
	// server cannot stall the sweep.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send aborted: %w", ctx.Err())
	}
}
