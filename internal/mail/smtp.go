package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/festivepros/inquiry/internal/config"
)

// SMTPSender implements Sender over SMTP with STARTTLS. Each call dials a
// fresh session; the sender holds no connection state, so it is safe to share
// across requests.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Verify dials the server, negotiates STARTTLS, and authenticates, then
// closes the session. This mirrors the transport verification the relay runs
// before sending.
func (s *SMTPSender) Verify(ctx context.Context) error {
	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Quit()

	if err := c.Noop(); err != nil {
		return fmt.Errorf("smtp: verify failed: %w", err)
	}
	return nil
}

// Send delivers the message over a fresh SMTP session.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Quit()

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("smtp: MAIL FROM failed: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp: RCPT TO failed: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp: DATA failed: %w", err)
	}
	if _, err := w.Write(buildMIME(msg)); err != nil {
		w.Close()
		return fmt.Errorf("smtp: failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: failed to finish message: %w", err)
	}

	return nil
}

func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	d := net.Dialer{Timeout: s.cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to connect to %s: %w", s.cfg.Addr(), err)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp: handshake failed: %w", err)
	}

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{
			ServerName: s.cfg.Host,
			MinVersion: s.minTLSVersion(),
		}
		if err := c.StartTLS(tlsCfg); err != nil {
			c.Close()
			return nil, fmt.Errorf("smtp: STARTTLS failed: %w", err)
		}
	} else if s.cfg.RequireTLS {
		c.Close()
		return nil, errors.New("smtp: server does not support STARTTLS")
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := c.Auth(auth); err != nil {
			c.Close()
			return nil, fmt.Errorf("smtp: auth failed: %w", err)
		}
	}

	return c, nil
}

func (s *SMTPSender) minTLSVersion() uint16 {
	if s.cfg.MinTLS == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}

// buildMIME renders the message as a multipart/alternative document when both
// bodies are present, or a single-part document otherwise.
func buildMIME(msg Message) []byte {
	headers := []string{
		"From: " + msg.From,
		"To: " + msg.To,
	}
	if msg.ReplyTo != "" {
		headers = append(headers, "Reply-To: "+msg.ReplyTo)
	}
	headers = append(headers,
		"Subject: "+msg.Subject,
		"MIME-Version: 1.0",
	)

	var lines []string
	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		boundary := "boundary_inquiry_email"
		lines = append(headers,
			"Content-Type: multipart/alternative; boundary="+boundary,
			"",
			"--"+boundary,
			"Content-Type: text/plain; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.TextBody,
			"",
			"--"+boundary,
			"Content-Type: text/html; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.HTMLBody,
			"",
			"--"+boundary+"--",
		)
	case msg.HTMLBody != "":
		lines = append(headers,
			"Content-Type: text/html; charset=UTF-8",
			"",
			msg.HTMLBody,
		)
	default:
		lines = append(headers,
			"Content-Type: text/plain; charset=UTF-8",
			"",
			msg.TextBody,
		)
	}

	return []byte(strings.Join(lines, "\r\n"))
}
