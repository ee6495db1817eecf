package mail

import "context"

// Sender is the interface that all mail providers must implement. This
// abstraction allows swapping providers (SMTP, Gmail API, a dev logger)
// without changing the relay handler.
type Sender interface {
	// Verify checks that the transport is reachable and, where applicable,
	// authenticated. It may block on connection setup; cancellation is the
	// caller's responsibility via ctx.
	Verify(ctx context.Context) error
	// Send delivers the message.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	From     string // sender address
	To       string // recipient email address
	ReplyTo  string // optional Reply-To address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}
