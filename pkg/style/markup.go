package style

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`\[(/?)([a-z_]+)\]`)

// MarkupParser handles parsing and rendering of markup tags such as
// "[item]disk-critical[/item]".
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	for tag, st := range tagStyles() {
		p.AddStyle(tag, st)
	}
	return p
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, st lipgloss.Style) {
	p.styles[tag] = st
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render processes markup text and returns styled output. Inner tags are
// rendered before the tags enclosing them.
func (p *MarkupParser) Render(text string) string {
	tags := make([]string, 0, len(p.styles))
	for tag := range p.styles {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	result := text
	for {
		before := result
		for _, tag := range tags {
			pattern, st := p.patterns[tag], p.styles[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				if p.hasTag(sub[1]) {
					return match
				}
				return st.Render(sub[1])
			})
		}
		if result == before {
			return result
		}
	}
}

func (p *MarkupParser) hasTag(text string) bool {
	for _, sub := range tagPattern.FindAllStringSubmatch(text, -1) {
		if _, ok := p.styles[sub[2]]; ok {
			return true
		}
	}
	return false
}

// Strip removes known tags, leaving their content.
func (p *MarkupParser) Strip(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tagPattern.FindStringSubmatch(match)
		if _, ok := p.styles[sub[2]]; ok {
			return ""
		}
		return match
	})
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
