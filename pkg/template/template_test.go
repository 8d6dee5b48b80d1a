// Test Type: Unit Test
// Description: Tests for template parsing, placeholder counting and filling

package template_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/arthur-debert/emailnotify/pkg/template"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		body      string
		wantCount int
	}{
		{"no placeholders", "Hello", "plain body", 0},
		{"subject only", "Hi {0}", "static", 1},
		{"joint max across fields", "Alert {2}", "Value {0}", 3},
		{"body max wins", "{0}", "{0} {1} {4}", 5},
		{"repeated index", "{1}{1}", "{1}", 2},
		{"escaped braces are literal", "{{0}}", "{{not a field}}", 0},
		{"escape next to placeholder", "{{{0}}}", "", 1},
		{"leading zero", "{01}", "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.Parse("t", tt.subject, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, tmpl.PlaceholderCount())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		field   string
	}{
		{"named placeholder", "Hi {name}", "", "subject"},
		{"auto numbering", "", "Value {}", "body"},
		{"conversion", "{0!r}", "", "subject"},
		{"format spec", "", "{0:>4}", "body"},
		{"negative index", "{-1}", "", "subject"},
		{"unterminated", "", "Value {0", "body"},
		{"lone closing brace", "oops }", "", "subject"},
		{"attribute access", "", "{0.name}", "body"},
		{"index too large", "{99999}", "", "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.Parse("t1", tt.subject, tt.body)
			require.Error(t, err)
			assert.Nil(t, tmpl)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTemplate))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, "t1", details["template"])
			assert.Equal(t, tt.field, details["field"])
		})
	}
}

func TestFill_ExactArguments(t *testing.T) {
	tmpl := template.MustParse("t1", "Disk {0} at {1}", "Host {2}: {0} is {1} full")

	got := tmpl.Fill([]string{"/var", "91%", "db1"})

	assert.Equal(t, "Disk /var at 91%", got.Subject)
	assert.Equal(t, "Host db1: /var is 91% full", got.Body)
}

func TestFill_SurplusArgumentsIgnored(t *testing.T) {
	tmpl := template.MustParse("t1", "Hi {0}", "Bye {0}")

	got := tmpl.Fill([]string{"Alice", "extra", "more"})

	assert.Equal(t, "Hi Alice", got.Subject)
	assert.Equal(t, "Bye Alice", got.Body)
}

func TestFill_PadsMissingArguments(t *testing.T) {
	tmpl := template.MustParse("t1", "Hi {0}", "Value: {0}, {1}")

	got := tmpl.Fill([]string{"Alice"})

	assert.Equal(t, "Hi Alice", got.Subject)
	assert.Equal(t, "Value: Alice, [NO DATA]", got.Body)
}

func TestFill_NoArguments(t *testing.T) {
	tmpl := template.MustParse("t1", "{0}", "{1}")

	got := tmpl.Fill(nil)

	assert.Equal(t, template.Sentinel, got.Subject)
	assert.Equal(t, template.Sentinel, got.Body)
}

func TestFill_IsIdempotent(t *testing.T) {
	tmpl := template.MustParse("t1", "{0}-{3}", "{2}")
	args := []string{"a"}

	first := tmpl.Fill(args)
	second := tmpl.Fill(args)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a"}, args, "caller's slice must not change")
}

func TestFill_EscapedBraces(t *testing.T) {
	tmpl := template.MustParse("t1", "{{{0}}}", "json: {{\"k\": \"{1}\"}}")

	got := tmpl.Fill([]string{"x", "y"})

	assert.Equal(t, "{x}", got.Subject)
	assert.Equal(t, `json: {"k": "y"}`, got.Body)
}

func TestFillWith_CustomSentinel(t *testing.T) {
	tmpl := template.MustParse("t1", "{0}/{1}", "")

	got := tmpl.FillWith([]string{"a"}, "?")

	assert.Equal(t, "a/?", got.Subject)
}

func TestFill_WarnsWhenPadding(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupWriter(&buf, zerolog.WarnLevel)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tmpl := template.MustParse("t1", "{0}", "{1}")
	tmpl.Fill([]string{"only"})

	out := buf.String()
	assert.Contains(t, out, "padding")
	assert.Contains(t, out, `"template":"t1"`)
	assert.Contains(t, out, `"required":2`)
}

func TestFill_NoWarningWhenSupplied(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupWriter(&buf, zerolog.WarnLevel)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tmpl := template.MustParse("t1", "{0}", "")
	tmpl.Fill([]string{"enough"})

	assert.Empty(t, buf.String())
}

func TestPad(t *testing.T) {
	t.Run("pads to length", func(t *testing.T) {
		assert.Equal(t, []string{"a", "-", "-"}, template.Pad([]string{"a"}, 3, "-"))
	})

	t.Run("no padding needed", func(t *testing.T) {
		args := []string{"a", "b"}
		assert.Equal(t, args, template.Pad(args, 1, "-"))
	})

	t.Run("does not alias spare capacity", func(t *testing.T) {
		backing := make([]string, 1, 4)
		backing[0] = "a"
		padded := template.Pad(backing, 3, "-")
		padded[0] = "changed"
		assert.Equal(t, "a", backing[0])
	})
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() {
		template.MustParse("bad", "{name}", "")
	})
}

func TestAccessors(t *testing.T) {
	tmpl := template.MustParse("t1", "Hi {0}", "Body")

	assert.Equal(t, "t1", tmpl.ID())
	assert.Equal(t, "Hi {0}", tmpl.Subject())
	assert.Equal(t, "Body", tmpl.Body())
}
