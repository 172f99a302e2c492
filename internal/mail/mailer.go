package mail

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when any SMTP credential is missing.
var ErrNotConfigured = errors.New("smtp transport not configured")

// Mailer delivers emails over SMTP.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewMailer constructs a Mailer. All four transport credentials are required;
// a missing one fails here, before any network I/O is attempted.
func NewMailer(host string, port int, user, password, from string) (*Mailer, error) {
	if host == "" || port == 0 || user == "" || password == "" {
		return nil, ErrNotConfigured
	}
	if from == "" {
		from = user
	}
	return &Mailer{host: host, port: port, user: user, password: password, from: from}, nil
}

// Attachment is an in-memory file to attach.
type Attachment struct {
	FileName string
	MIMEType string
	Content  []byte
}

// Deliver sends a plain-text email with an optional attachment. One attempt,
// no retries.
func (m *Mailer) Deliver(recipient, subject, body string, attachment *Attachment) error {
	if m == nil {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if attachment != nil {
		msg.Attach(attachment.FileName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(attachment.Content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {attachment.MIMEType},
			}),
		)
	}

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
