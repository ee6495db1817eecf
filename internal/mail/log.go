package mail

import (
	"context"

	"github.com/festivepros/inquiry/internal/logger"
)

// LogSender is a development provider that logs messages instead of sending
// them, so the relay can be exercised without SMTP credentials.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.WithComponent("mail")}
}

// Verify always succeeds.
func (s *LogSender) Verify(ctx context.Context) error {
	return nil
}

// Send logs the message and reports success.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.Info().
		Str("from", msg.From).
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("text_body", msg.TextBody).
		Msg("email suppressed (log provider)")
	return nil
}
