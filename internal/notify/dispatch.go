package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urielgre/doordash-fifty-alert/internal/config"
)

// Dispatcher resolves the recipient set and performs the single outbound
// delivery call. Provider failures propagate unmodified to the caller;
// there is no retry or backoff here — the external scheduler re-invoking
// the phase is the retry mechanism.
type Dispatcher struct {
	client Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the given provider client.
func NewDispatcher(client Client, cfg *config.Config, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Subscribers returns the currently-subscribed addresses in the audience.
// Addresses the provider marks unsubscribed are excluded.
func (d *Dispatcher) Subscribers(ctx context.Context) ([]string, error) {
	contacts, err := d.client.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch subscribers: %w", err)
	}
	subs := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if !c.Unsubscribed {
			subs = append(subs, c.Email)
		}
	}
	return subs, nil
}

// Dispatch delivers the rendered content. With testAddr set, a single
// message goes to that address alone. Otherwise the audience is resolved
// first: an empty subscriber set skips delivery and reports a no-op
// (empty reference, nil error), and a non-empty one gets the broadcast
// path, where the provider resolves the unsubscribe placeholder per
// recipient.
//
// The returned message reference exists for operator visibility only; it
// is never persisted.
func (d *Dispatcher) Dispatch(ctx context.Context, html, text, testAddr string) (string, error) {
	if testAddr != "" {
		d.logger.Info("Sending test email", "to", testAddr)
		id, err := d.client.SendEmail(ctx, Email{
			From:    d.cfg.EmailFrom,
			To:      []string{testAddr},
			Subject: d.cfg.EmailSubject,
			HTML:    html,
			Text:    text,
			Headers: map[string]string{
				"List-Unsubscribe": "<" + UnsubscribePlaceholder + ">",
			},
		})
		if err != nil {
			return "", err
		}
		d.logger.Info("Test email sent", "email_id", id)
		return id, nil
	}

	subs, err := d.Subscribers(ctx)
	if err != nil {
		return "", err
	}
	if len(subs) == 0 {
		d.logger.Info("No subscribers to notify, skipping dispatch")
		return "", nil
	}

	d.logger.Info("Sending broadcast", "subscribers", len(subs))
	id, err := d.client.SendBroadcast(ctx, Broadcast{
		AudienceID: d.cfg.ResendAudienceID,
		From:       d.cfg.EmailFrom,
		Subject:    d.cfg.EmailSubject,
		HTML:       html,
		Text:       text,
	})
	if err != nil {
		return "", err
	}
	d.logger.Info("Broadcast sent", "broadcast_id", id, "subscribers", len(subs))
	return id, nil
}
