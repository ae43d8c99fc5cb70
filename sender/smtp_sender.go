package sender

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

// SMTPSender delivers email through a configured SMTP relay. With secure set,
// it connects over implicit TLS (typically port 465); otherwise it uses
// smtp.SendMail, which upgrades via STARTTLS when the server offers it.
type SMTPSender struct {
	host     string
	port     string
	secure   bool
	username string
	password string
	from     string
}

func NewSMTPSender(host, port string, secure bool, username, password, from string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set")
	}
	if from == "" {
		from = username
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		secure:   secure,
		username: username,
		password: password,
		from:     from,
	}, nil
}

func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) (SendResult, error) {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	msg := buildMessage(s.from, to, subject, body)

	var err error
	if s.secure {
		err = s.sendTLS(addr, to, msg)
	} else {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		err = smtp.SendMail(addr, auth, s.from, []string{to}, msg)
	}
	if err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	return SendResult{
		MessageID: uuid.NewString(),
		SentAt:    time.Now(),
	}, nil
}

// sendTLS speaks SMTP over an implicit TLS connection.
func (s *SMTPSender) sendTLS(addr, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}
	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(
		"From: \"Website Contact\" <" + from + ">\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)
}
