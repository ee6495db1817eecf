package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/festivepros/inquiry/internal/config"
)

// GmailSender implements Sender using the Gmail API. Alternate provider for
// deployments that relay through a Google Workspace mailbox instead of SMTP.
type GmailSender struct {
	service *gmail.Service
	sender  string
}

// NewGmailSender creates a GmailSender from service account credentials with
// domain-wide delegation, impersonating the sender mailbox.
func NewGmailSender(ctx context.Context, cfg config.GmailConfig, senderAddress string) (*GmailSender, error) {
	if cfg.CredentialsJSON == "" {
		return nil, fmt.Errorf("gmail: credentials JSON is required")
	}
	if senderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to parse credentials: %w", err)
	}
	jwtConfig.Subject = senderAddress

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{service: svc, sender: senderAddress}, nil
}

// NewGmailSenderWithToken creates a GmailSender using OAuth2 client
// credentials plus a refresh token. Useful for mailboxes without domain-wide
// delegation.
func NewGmailSenderWithToken(ctx context.Context, cfg config.GmailConfig, senderAddress string) (*GmailSender, error) {
	if senderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	token := &oauth2.Token{RefreshToken: cfg.RefreshToken}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{service: svc, sender: senderAddress}, nil
}

// Verify checks the Gmail profile is reachable with the configured
// credentials.
func (g *GmailSender) Verify(ctx context.Context) error {
	if _, err := g.service.Users.GetProfile("me").Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail: verify failed: %w", err)
	}
	return nil
}

// Send sends an email via the Gmail API.
func (g *GmailSender) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = g.sender
	}

	gmailMsg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(buildMIME(msg)),
	}

	if _, err := g.service.Users.Messages.Send("me", gmailMsg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail: failed to send email: %w", err)
	}
	return nil
}
