package mailer

import (
	"context"
	"crypto/tls"

	"github.com/arthur-debert/emailnotify/pkg/config"
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"gopkg.in/mail.v2"
)

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// SMTPSender sends through an SMTP server, one connection per message.
type SMTPSender struct {
	dialer dialer
	host   string
	// listRecipients puts every address in To instead of Bcc.
	listRecipients bool
}

// NewSMTP configures an SMTP sender from cfg.
func NewSMTP(cfg config.Transport) *SMTPSender {
	d := mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	d.SSL = cfg.SMTP.SSL
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}
	if cfg.SMTP.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{ServerName: cfg.SMTP.Host, InsecureSkipVerify: true} //nolint:gosec
	}
	return &SMTPSender{dialer: d, host: cfg.SMTP.Host, listRecipients: cfg.Recipients == RecipientsTo}
}

// Name implements Sender.
func (s *SMTPSender) Name() string { return KindSMTP }

// Send implements Sender. All recipients share one message.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkMessage(msg); err != nil {
		return err
	}

	logger := logging.GetLogger("mailer.smtp")
	logger.Debug().
		Str("host", s.host).
		Str("message", msg.ID).
		Strs("to", msg.To).
		Msg("Sending message")

	if err := s.dialer.DialAndSend(buildMessage(msg, s.listRecipients)); err != nil {
		return errors.Wrapf(err, errors.ErrSend, "smtp delivery of %s failed", msg.ItemID).
			WithDetail("host", s.host).
			WithDetail("message", msg.ID)
	}
	return nil
}

// buildMessage addresses msg to its recipients. Unless listRecipients is
// set they go in Bcc, which mail.v2 uses for the envelope only.
func buildMessage(msg Message, listRecipients bool) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	if listRecipients {
		m.SetHeader("To", msg.To...)
	} else {
		m.SetHeader("Bcc", msg.To...)
	}
	m.SetHeader("Subject", msg.Subject)
	if msg.RunID != "" {
		m.SetHeader(RunHeader, msg.RunID)
	}
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else {
		m.SetBody("text/html", msg.HTML)
	}
	return m
}
