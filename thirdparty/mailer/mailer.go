// Package mailer renders and sends account emails over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/cmd/config"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"github.com/wneessen/go-mail"
)

const confirmationSubject = "Confirm your Property Hub account"

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{ .Subject }}</title>
  </head>
  <body>
    <p>Hi {{ .FirstName }},</p>
    <p>
      Use the code below to confirm your email address.
    </p>
    <h2 style="letter-spacing: 4px;">{{ .Code }}</h2>
    <p>If you did not create an account, you can ignore this email.</p>
  </body>
</html>
`))

type Mailer struct {
	client   *mail.Client
	from     string
	minifier *minify.M
}

func New(cfg config.SMTPConfig) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{client: client, from: cfg.From, minifier: newMinifier()}, nil
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	return m
}

// SendConfirmation mails the confirmation code as an HTML message with a
// plain-text alternative.
func (m *Mailer) SendConfirmation(ctx context.Context, n model.ConfirmationNotification) error {
	htmlBody, err := renderConfirmation(m.minifier, n)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(n.Email); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(confirmationSubject)
	msg.SetBodyString(mail.TypeTextPlain, plainConfirmation(n))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	return m.client.DialAndSendWithContext(ctx, msg)
}

func renderConfirmation(minifier *minify.M, n model.ConfirmationNotification) (string, error) {
	var buf bytes.Buffer
	err := confirmationHTML.Execute(&buf, struct {
		Subject   string
		FirstName string
		Code      int
	}{confirmationSubject, n.FirstName, n.Code})
	if err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	out, err := minifier.String("text/html", buf.String())
	if err != nil {
		return "", fmt.Errorf("minify confirmation: %w", err)
	}
	return out, nil
}

func plainConfirmation(n model.ConfirmationNotification) string {
	return fmt.Sprintf("Hi %s,\n\nYour Property Hub confirmation code is %d.\n", n.FirstName, n.Code)
}
