package template

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/emailnotify/pkg/errors"
)

// MaxPlaceholderIndex bounds the index a placeholder may reference, so a
// typo such as {99999999} cannot force a huge padded argument list.
const MaxPlaceholderIndex = 1024

// token is either literal text or a positional placeholder.
type token struct {
	text  string
	index int // -1 for literal text
}

func (t token) isPlaceholder() bool { return t.index >= 0 }

// segments is a parsed field: literal runs and placeholders in source order.
type segments []token

// maxIndex returns the highest placeholder index, or -1 when there is none.
func (s segments) maxIndex() int {
	max := -1
	for _, t := range s {
		if t.index > max {
			max = t.index
		}
	}
	return max
}

func (s segments) render(args []string) string {
	var b strings.Builder
	for _, t := range s {
		if t.isPlaceholder() {
			b.WriteString(args[t.index])
			continue
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// parseField splits text into segments. "{{" and "}}" are literal braces,
// "{N}" is placeholder N. Everything else inside braces is rejected.
func parseField(templateID, field, text string) (segments, error) {
	var (
		out     segments
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			out = append(out, token{text: literal.String(), index: -1})
			literal.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, invalid(templateID, field, i, "unterminated placeholder")
			}
			name := text[i+1 : i+1+end]
			idx, ok := parseIndex(name)
			if !ok {
				return nil, invalid(templateID, field, i, "placeholder {"+name+"} is not a positional index").
					WithDetail("placeholder", name)
			}
			flush()
			out = append(out, token{index: idx})
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}
			return nil, invalid(templateID, field, i, "single '}' encountered")
		default:
			literal.WriteByte(c)
		}
	}
	flush()

	return out, nil
}

func parseIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(name)
	if err != nil || idx > MaxPlaceholderIndex {
		return 0, false
	}
	return idx, true
}

func invalid(templateID, field string, offset int, reason string) *errors.NotifyError {
	return errors.Newf(errors.ErrInvalidTemplate, "template %s: %s: %s at offset %d", templateID, field, reason, offset).
		WithDetail("template", templateID).
		WithDetail("field", field).
		WithDetail("offset", offset)
}
