package template

import (
	"github.com/arthur-debert/emailnotify/pkg/logging"
)

// Sentinel is the default filler for arguments a template references but
// the invocation did not supply.
const Sentinel = "[NO DATA]"

// Template is an immutable subject and body pair with positional
// placeholders. It is safe to share between items.
type Template struct {
	id      string
	subject string
	body    string

	subjectSegs segments
	bodySegs    segments
	count       int
}

// Filled is a template after substitution.
type Filled struct {
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
}

// Parse validates subject and body and returns the compiled template.
// A non-numeric or malformed placeholder yields an INVALID_TEMPLATE error.
func Parse(id, subject, body string) (*Template, error) {
	subjectSegs, err := parseField(id, "subject", subject)
	if err != nil {
		return nil, err
	}
	bodySegs, err := parseField(id, "body", body)
	if err != nil {
		return nil, err
	}

	max := subjectSegs.maxIndex()
	if m := bodySegs.maxIndex(); m > max {
		max = m
	}

	return &Template{
		id:          id,
		subject:     subject,
		body:        body,
		subjectSegs: subjectSegs,
		bodySegs:    bodySegs,
		count:       max + 1,
	}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(id, subject, body string) *Template {
	t, err := Parse(id, subject, body)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) ID() string      { return t.id }
func (t *Template) Subject() string { return t.subject }
func (t *Template) Body() string    { return t.body }

// PlaceholderCount is one more than the highest index referenced by the
// subject and body together, or 0 when neither has placeholders.
func (t *Template) PlaceholderCount() int {
	return t.count
}

// Fill substitutes args using the default sentinel.
func (t *Template) Fill(args []string) Filled {
	return t.FillWith(args, Sentinel)
}

// FillWith substitutes args into subject and body. Missing arguments are
// replaced by sentinel and logged; surplus arguments are ignored.
func (t *Template) FillWith(args []string, sentinel string) Filled {
	if len(args) < t.count {
		logger := logging.GetLogger("template")
		logger.Warn().
			Str("template", t.id).
			Int("supplied", len(args)).
			Int("required", t.count).
			Str("sentinel", sentinel).
			Msg("Not enough arguments for template, padding")
	}

	padded := Pad(args, t.count, sentinel)
	return Filled{
		Subject: t.subjectSegs.render(padded),
		Body:    t.bodySegs.render(padded),
	}
}

// Pad returns args extended with sentinel up to n entries. The caller's
// slice is never modified; when no padding is needed args is returned as is.
func Pad(args []string, n int, sentinel string) []string {
	if len(args) >= n {
		return args
	}
	padded := make([]string, n)
	copy(padded, args)
	for i := len(args); i < n; i++ {
		padded[i] = sentinel
	}
	return padded
}
