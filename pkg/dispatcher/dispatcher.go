// Package dispatcher turns the arguments of one invocation into mail.
// BuildPlan decides who receives what; Dispatch hands the result to a
// mailer.Sender.
package dispatcher

import (
	"context"
	"time"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/arthur-debert/emailnotify/pkg/mailer"
	"github.com/arthur-debert/emailnotify/pkg/plaintext"
	"github.com/arthur-debert/emailnotify/pkg/registry"
	"github.com/arthur-debert/emailnotify/pkg/rules"
	"github.com/arthur-debert/emailnotify/pkg/template"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Status of one message after dispatch.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusDryRun  Status = "dry-run"
	StatusSkipped Status = "skipped"
)

// PlanOptions contains everything BuildPlan needs besides the registry.
type PlanOptions struct {
	From              string
	Sentinel          string
	GeneratePlaintext bool
	// Workers above 1 spread matching over that many goroutines.
	Workers int
	// RunID identifies the invocation; one is generated when empty.
	RunID string
}

// Plan is the set of messages one invocation produces.
type Plan struct {
	RunID    string           `json:"run_id" yaml:"run_id"`
	Args     []string         `json:"args" yaml:"args"`
	Messages []mailer.Message `json:"messages" yaml:"messages"`

	grouping *rules.Grouping
}

// Empty reports whether there is nothing to send.
func (p *Plan) Empty() bool { return len(p.Messages) == 0 }

// Grouping returns the item to recipients mapping the plan was built from.
func (p *Plan) Grouping() *rules.Grouping { return p.grouping }

// BuildPlan groups the users of reg by their first matching item and fills
// each matched item's template once. Messages follow grouping order.
func BuildPlan(ctx context.Context, reg *registry.Registry, args []string, opts PlanOptions) (*Plan, error) {
	logger := logging.GetLogger("dispatcher")

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	sentinel := opts.Sentinel
	if sentinel == "" {
		sentinel = template.Sentinel
	}

	grouping, err := rules.GroupRecipientsParallel(ctx, reg.Users(), args, opts.Workers)
	if err != nil {
		return nil, err
	}

	plan := &Plan{RunID: runID, Args: args, grouping: grouping}
	for _, g := range grouping.Groups() {
		tmpl := g.Item.Template()
		filled := tmpl.FillWith(args, sentinel)

		msg := mailer.Message{
			ID:         uuid.NewString(),
			RunID:      runID,
			ItemID:     g.Item.ID(),
			TemplateID: tmpl.ID(),
			From:       opts.From,
			To:         append([]string(nil), g.Recipients...),
			Subject:    filled.Subject,
			HTML:       filled.Body,
		}
		if opts.GeneratePlaintext {
			text, err := plaintext.FromHTML(filled.Body)
			if err != nil {
				logger.Warn().Err(err).Str("item", msg.ItemID).Msg("Cannot derive plain text, sending HTML only")
			} else {
				msg.Text = text
			}
		}
		plan.Messages = append(plan.Messages, msg)
	}

	logger.Info().
		Str("run", runID).
		Int("args", len(args)).
		Int("messages", len(plan.Messages)).
		Msg("Plan built")

	return plan, nil
}

// Outcome is what happened to one message.
type Outcome struct {
	MessageID  string   `json:"message_id" yaml:"message_id"`
	ItemID     string   `json:"item" yaml:"item"`
	Recipients []string `json:"recipients" yaml:"recipients"`
	Status     Status   `json:"status" yaml:"status"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result summarises a dispatch.
type Result struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Sender   string        `json:"sender" yaml:"sender"`
	DryRun   bool          `json:"dry_run" yaml:"dry_run"`
	Outcomes []Outcome     `json:"outcomes" yaml:"outcomes"`
	Sent     int           `json:"sent" yaml:"sent"`
	Failed   int           `json:"failed" yaml:"failed"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// DispatchOptions control a single dispatch.
type DispatchOptions struct {
	DryRun bool
}

// Dispatcher sends plans through a Sender. Sender may be nil for dry runs.
type Dispatcher struct {
	Sender mailer.Sender
	Logger zerolog.Logger
}

// New creates a Dispatcher logging under the dispatcher component.
func New(sender mailer.Sender) *Dispatcher {
	return &Dispatcher{Sender: sender, Logger: logging.GetLogger("dispatcher")}
}

// Dispatch sends every message of plan. A failed message does not stop the
// others; all failures are joined into the returned error. Cancelling ctx
// marks the remaining messages skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, plan *Plan, opts DispatchOptions) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: plan.RunID, DryRun: opts.DryRun}
	if d.Sender != nil {
		result.Sender = d.Sender.Name()
	}

	if plan.Empty() {
		d.Logger.Info().Str("run", plan.RunID).Msg("No user matched, nothing to send")
		return result, nil
	}
	if !opts.DryRun && d.Sender == nil {
		return nil, errors.New(errors.ErrTransport, "no sender configured")
	}

	var errs []error
	for _, msg := range plan.Messages {
		outcome := Outcome{MessageID: msg.ID, ItemID: msg.ItemID, Recipients: msg.To}

		switch {
		case ctx.Err() != nil:
			outcome.Status = StatusSkipped
		case opts.DryRun:
			outcome.Status = StatusDryRun
			d.Logger.Info().
				Str("item", msg.ItemID).
				Strs("to", msg.To).
				Str("subject", msg.Subject).
				Msg("Dry run, not sending")
		default:
			if err := d.Sender.Send(ctx, msg); err != nil {
				outcome.Status = StatusFailed
				outcome.Error = err.Error()
				result.Failed++
				errs = append(errs, err)
				d.Logger.Error().Err(err).
					Str("item", msg.ItemID).
					Strs("to", msg.To).
					Msg("Send failed")
			} else {
				outcome.Status = StatusSent
				result.Sent++
				d.Logger.Info().
					Str("item", msg.ItemID).
					Strs("to", msg.To).
					Str("sender", d.Sender.Name()).
					Msg("Message sent")
			}
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	result.Duration = time.Since(start)

	d.Logger.Debug().
		Str("run", plan.RunID).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Dur("duration", result.Duration).
		Msg("Dispatch complete")

	return result, errors.Join(errs...)
}
