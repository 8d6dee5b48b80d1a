package dispatcher

import (
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/plaintext"
	"github.com/arthur-debert/emailnotify/pkg/registry"
	"github.com/arthur-debert/emailnotify/pkg/template"
)

// Preview is one template filled with arguments, for inspection.
type Preview struct {
	TemplateID string   `json:"template" yaml:"template"`
	Args       []string `json:"args" yaml:"args"`
	Required   int      `json:"required" yaml:"required"`
	Subject    string   `json:"subject" yaml:"subject"`
	HTML       string   `json:"html" yaml:"html"`
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
}

// Render fills the template templateID of reg without matching or sending.
func Render(reg *registry.Registry, templateID string, args []string, opts PlanOptions) (*Preview, error) {
	tmpl, ok := reg.Template(templateID)
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "template %q not found", templateID).
			WithDetail("template", templateID)
	}

	sentinel := opts.Sentinel
	if sentinel == "" {
		sentinel = template.Sentinel
	}
	filled := tmpl.FillWith(args, sentinel)

	p := &Preview{
		TemplateID: templateID,
		Args:       args,
		Required:   tmpl.PlaceholderCount(),
		Subject:    filled.Subject,
		HTML:       filled.Body,
	}
	if opts.GeneratePlaintext {
		text, err := plaintext.FromHTML(filled.Body)
		if err != nil {
			return nil, err
		}
		p.Text = text
	}
	return p, nil
}
