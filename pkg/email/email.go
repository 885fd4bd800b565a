package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"go-internmatch-backend/config"
	"go-internmatch-backend/internal/domain"
)

// EmailService delivers notifications over SMTP. It implements
// domain.Notifier.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether outgoing mail can actually be sent.
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

const interestTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>A company is interested in you</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.CompanyName}} is interested in your profile</h1>
        </div>
        <div class="content">
            <p>Hi {{.CandidateName}},</p>
            <p>{{.CompanyName}} has expressed interest in you. You can reach them directly:</p>
            {{if .RecruiterName}}<div class="field">
                <div class="label">Recruiter:</div>
                <div class="value">{{.RecruiterName}}{{if .RecruiterPosition}} ({{.RecruiterPosition}}){{end}}</div>
            </div>{{end}}
            {{if .Emails}}<div class="field">
                <div class="label">Email:</div>
                {{range .Emails}}<div class="value">{{.}}</div>{{end}}
            </div>{{end}}
            {{if .Phones}}<div class="field">
                <div class="label">Phone:</div>
                {{range .Phones}}<div class="value">{{.}}</div>{{end}}
            </div>{{end}}
            {{if .AdditionalContact}}<div class="field">
                <div class="label">Other contact info:</div>
                <div class="value">{{.AdditionalContact}}</div>
            </div>{{end}}
        </div>
        <div class="footer">
            <p>You are receiving this because a company viewed your candidate profile.</p>
        </div>
    </div>
</body>
</html>`

const passwordResetTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password reset</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; background: #0066cc; color: white; padding: 12px 24px; text-decoration: none; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <p>Hi {{.Name}},</p>
        <p>We received a request to reset your password. The link below is valid for a few minutes:</p>
        <p><a class="button" href="{{.ResetURL}}">Reset password</a></p>
        <p>If you did not request this, you can ignore this email.</p>
        <div class="footer"><p>This link expires shortly after it was requested.</p></div>
    </div>
</body>
</html>`

// SendInterestNotice delivers the contact-disclosure mail to the candidate.
func (s *EmailService) SendInterestNotice(ctx context.Context, n domain.InterestNotification) error {
	subject := fmt.Sprintf("%s is interested in your profile", n.CompanyName)
	body, err := render("interest", interestTemplate, n)
	if err != nil {
		return err
	}
	return s.send(ctx, n.CandidateEmail, subject, body)
}

func (s *EmailService) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	body, err := render("reset", passwordResetTemplate, struct {
		Name     string
		ResetURL string
	}{Name: name, ResetURL: resetURL})
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Reset your password", body)
}

func render(name, tmpl string, data any) (string, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailService) send(ctx context.Context, to, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail, to, subject, htmlBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
