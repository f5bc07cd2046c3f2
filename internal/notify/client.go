package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Contact is one audience member as the contact-list provider reports it.
// The pipeline only ever reads the list; subscription status is owned
// entirely by the provider.
type Contact struct {
	Email        string
	Unsubscribed bool
}

// Email is a single message to explicit recipients.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

// Broadcast is a bulk message to a whole audience; the provider resolves
// unsubscribe handling per recipient.
type Broadcast struct {
	AudienceID string
	From       string
	Subject    string
	HTML       string
	Text       string
}

// Client is the surface of the email/contact-list provider the notify
// phase uses.
type Client interface {
	// ListContacts returns every contact in the audience, including
	// unsubscribed ones.
	ListContacts(ctx context.Context) ([]Contact, error)

	// SendEmail delivers one message to explicit recipients and returns
	// the provider's message id.
	SendEmail(ctx context.Context, email Email) (string, error)

	// SendBroadcast creates and sends a broadcast to the audience and
	// returns the provider's broadcast id.
	SendBroadcast(ctx context.Context, b Broadcast) (string, error)
}

// resendClient implements Client against the Resend API.
type resendClient struct {
	client     *resend.Client
	audienceID string
}

// NewResendClient creates a Resend-backed Client scoped to one audience.
func NewResendClient(apiKey, audienceID string) Client {
	return &resendClient{
		client:     resend.NewClient(apiKey),
		audienceID: audienceID,
	}
}

func (c *resendClient) ListContacts(ctx context.Context) ([]Contact, error) {
	resp, err := c.client.Contacts.ListWithContext(ctx, c.audienceID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	contacts := make([]Contact, 0, len(resp.Data))
	for _, rc := range resp.Data {
		contacts = append(contacts, Contact{
			Email:        rc.Email,
			Unsubscribed: rc.Unsubscribed,
		})
	}
	return contacts, nil
}

func (c *resendClient) SendEmail(ctx context.Context, email Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Headers: email.Headers,
	}
	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	return sent.Id, nil
}

func (c *resendClient) SendBroadcast(ctx context.Context, b Broadcast) (string, error) {
	created, err := c.client.Broadcasts.CreateWithContext(ctx, &resend.CreateBroadcastRequest{
		AudienceId: b.AudienceID,
		From:       b.From,
		Subject:    b.Subject,
		Html:       b.HTML,
		Text:       b.Text,
	})
	if err != nil {
		return "", fmt.Errorf("create broadcast: %w", err)
	}
	sent, err := c.client.Broadcasts.SendWithContext(ctx, &resend.SendBroadcastRequest{
		BroadcastId: created.Id,
	})
	if err != nil {
		return "", fmt.Errorf("send broadcast: %w", err)
	}
	return sent.Id, nil
}
