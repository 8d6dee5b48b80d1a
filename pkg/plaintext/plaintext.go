// Package plaintext derives the text/plain alternative of an HTML mail body.
package plaintext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/arthur-debert/emailnotify/pkg/errors"
)

var skipped = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"#comment": true,
}

var blocks = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "div": true, "dl": true, "fieldset": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"main": true, "nav": true, "ol": true, "p": true, "section": true,
	"table": true, "ul": true,
}

// FromHTML renders html as readable plain text. Block elements are separated
// by blank lines, list items are prefixed with "* " and links keep their
// target in parentheses.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot parse HTML body")
	}

	w := &writer{}
	w.walk(doc.Selection)
	return strings.TrimSpace(w.b.String()), nil
}

type writer struct {
	b        strings.Builder
	started  bool
	space    bool
	newlines int
}

func (w *writer) walk(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case skipped[name]:
		case name == "#text":
			w.text(node.Text())
		case name == "br":
			w.newline()
		case name == "pre":
			w.breakLine(2)
			w.raw(strings.Trim(node.Text(), "\n"))
			w.breakLine(2)
		case name == "li" || name == "dt" || name == "dd" || name == "tr":
			w.breakLine(1)
			if name == "li" {
				w.raw("* ")
			}
			w.walk(node)
			w.breakLine(1)
		case name == "td" || name == "th":
			w.walk(node)
			w.space = true
		case name == "a":
			w.walk(node)
			href, _ := node.Attr("href")
			if href != "" && !strings.HasPrefix(href, "#") && href != strings.TrimSpace(node.Text()) {
				w.text(" (" + href + ")")
			}
		case blocks[name]:
			w.breakLine(2)
			w.walk(node)
			w.breakLine(2)
		default:
			w.walk(node)
		}
	})
}

// text writes s with runs of whitespace collapsed to one space.
func (w *writer) text(s string) {
	if s == "" {
		return
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) {
		w.space = true
	}
	for _, word := range strings.Fields(s) {
		if w.space && w.started && w.newlines == 0 {
			w.b.WriteByte(' ')
		}
		w.b.WriteString(word)
		w.started = true
		w.newlines = 0
		w.space = true
	}
	if r, _ := utf8.DecodeLastRuneInString(s); !unicode.IsSpace(r) {
		w.space = false
	}
}

func (w *writer) raw(s string) {
	if s == "" {
		return
	}
	w.b.WriteString(s)
	w.started = true
	w.newlines = 0
	w.space = false
}

func (w *writer) newline() {
	if !w.started {
		return
	}
	w.b.WriteByte('\n')
	w.newlines++
	w.space = false
}

// breakLine ends the current line so that at least n newlines separate it
// from what follows.
func (w *writer) breakLine(n int) {
	if !w.started {
		return
	}
	for w.newlines < n {
		w.b.WriteByte('\n')
		w.newlines++
	}
	w.space = false
}
