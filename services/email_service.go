package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"recipehub-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendWelcomeEmail greets a freshly registered user.
func (es *EmailService) SendWelcomeEmail(email, username string) error {
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome to RecipeHub, %s!</h2>
    <p>Your account is ready. Browse recipes, plan your week and join the forum.</p>
    <p><strong>The RecipeHub Team</strong></p>
</body>
</html>`, username)

	textBody := fmt.Sprintf(`Welcome to RecipeHub, %s!

Your account is ready. Browse recipes, plan your week and join the forum.

The RecipeHub Team`, username)

	return es.send(email, "Welcome to RecipeHub", textBody, htmlBody)
}

// SendPasswordResetEmail notifies a user that a password reset was requested
// for their account.
func (es *EmailService) SendPasswordResetEmail(email, username string) error {
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s,</h2>
    <p>A password reset was requested for your RecipeHub account.
    If this was you, open the app and set a new password. If not, you can
    safely ignore this email.</p>
    <p><strong>The RecipeHub Team</strong></p>
</body>
</html>`, username)

	textBody := fmt.Sprintf(`Hello %s,

A password reset was requested for your RecipeHub account. If this was you,
open the app and set a new password. If not, you can safely ignore this
email.

The RecipeHub Team`, username)

	return es.send(email, "RecipeHub - Password Reset", textBody, htmlBody)
}

func (es *EmailService) send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
