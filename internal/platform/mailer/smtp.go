package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host        string
	Port        int
	From        string
	User        string
	Pass        string
	InsecureTLS bool // relaxes certificate checks, some booking SMTP relays use self-signed certs
}

func NewSMTPMailer(host string, port int, from, user, pass string, insecureTLS bool) *SMTPMailer {
	return &SMTPMailer{
		Host:        strings.TrimSpace(host),
		Port:        port,
		From:        strings.TrimSpace(from),
		User:        strings.TrimSpace(user),
		Pass:        strings.TrimSpace(pass),
		InsecureTLS: insecureTLS,
	}
}

func (s *SMTPMailer) Send(_ context.Context, toEmail, subject, text string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n", text)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// Port 465 is submission over implicit TLS; everything else goes
	// through SendMail, which upgrades via STARTTLS when advertised.
	if s.Port != 465 {
		return smtp.SendMail(addr, auth, s.From, []string{toEmail}, buf.Bytes())
	}

	tlsCfg := &tls.Config{ServerName: s.Host, InsecureSkipVerify: s.InsecureTLS}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if auth != nil {
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(toEmail); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
