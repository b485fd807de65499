// Package mail forwards contact form submissions by SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Contact is a submission to forward.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers a contact submission to the site owner.
type Sender interface {
	Send(ctx context.Context, c Contact) error
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	send SendFunc
}

func NewSMTP(host, port, user, pass, to string) *SMTP {
	return &SMTP{Host: host, Port: port, User: user, Pass: pass, To: to, send: smtp.SendMail}
}

// WithSendFunc replaces the transport, for tests.
func (s *SMTP) WithSendFunc(fn SendFunc) *SMTP {
	s.send = fn
	return s
}

func (s *SMTP) Configured() bool {
	return s.User != "" && s.Pass != "" && s.To != ""
}

func (s *SMTP) Send(ctx context.Context, c Contact) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := s.send(s.Host+":"+s.Port, auth, s.User, []string{s.To}, s.compose(c)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

// headerSafe strips line breaks so user input cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

func (s *SMTP) compose(c Contact) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(c.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, c.Name, c.Email, c.Message)

	return []byte("To: " + s.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.User + "\r\n" +
		"Reply-To: " + headerSafe(c.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
