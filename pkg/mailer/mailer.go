// Package mailer hands filled messages to a mail transport.
package mailer

import (
	"context"

	"github.com/arthur-debert/emailnotify/pkg/config"
	"github.com/arthur-debert/emailnotify/pkg/errors"
)

// Transport kinds.
const (
	KindSMTP = "smtp"
	KindSES  = "ses"
)

// RunHeader carries the id of the invocation that produced a message.
const RunHeader = "X-Emailnotify-Run"

// Message is one mail to every recipient of a group.
type Message struct {
	ID         string   `json:"id" yaml:"id"`
	RunID      string   `json:"run_id" yaml:"run_id"`
	ItemID     string   `json:"item" yaml:"item"`
	TemplateID string   `json:"template" yaml:"template"`
	From       string   `json:"from" yaml:"from"`
	To         []string `json:"to" yaml:"to"`
	Subject    string   `json:"subject" yaml:"subject"`
	HTML       string   `json:"html" yaml:"html"`
	// Text is the plain alternative, empty when none was generated.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// New builds the sender selected by cfg.Kind. An empty kind means SMTP.
// Recipient modes of config.Transport.Recipients.
const (
	RecipientsBcc = "bcc"
	RecipientsTo  = "to"
)

func New(ctx context.Context, cfg config.Transport) (Sender, error) {
	switch cfg.Kind {
	case "", KindSMTP:
		return NewSMTP(cfg), nil
	case KindSES:
		return NewSES(ctx, cfg)
	default:
		return nil, errors.Newf(errors.ErrTransport, "unknown transport kind %q", cfg.Kind).
			WithDetail("kind", cfg.Kind)
	}
}

func checkMessage(msg Message) error {
	if len(msg.To) == 0 {
		return errors.New(errors.ErrInvalidInput, "message has no recipients").
			WithDetail("message", msg.ID)
	}
	if msg.From == "" {
		return errors.New(errors.ErrInvalidInput, "message has no sender address").
			WithDetail("message", msg.ID)
	}
	return nil
}
