package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the value of the --format flag.
type Format int

const (
	FormatAuto Format = iota
	// FormatTerminal is colored markup for an interactive terminal.
	FormatTerminal
	// FormatText is the same layout with markup stripped.
	FormatText
	// FormatJSON and FormatYAML serialise the result itself, for scripts
	// that post-process a send or check.
	FormatJSON
	FormatYAML
)

// formatNames lists the accepted --format spellings; the first spelling
// of each format is its canonical name.
var formatNames = []struct {
	format Format
	names  []string
}{
	{FormatAuto, []string{"auto", ""}},
	{FormatTerminal, []string{"term", "terminal"}},
	{FormatText, []string{"text", "plain"}},
	{FormatJSON, []string{"json"}},
	{FormatYAML, []string{"yaml", "yml"}},
}

func (f Format) String() string {
	for _, fn := range formatNames {
		if fn.format == f {
			return fn.names[0]
		}
	}
	return "unknown"
}

// ParseFormat reads a --format value, case-insensitively.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, fn := range formatNames {
		for _, name := range fn.names {
			if name == s {
				return fn.format, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput,
		"unknown format %q, expected auto, term, text, json or yaml", s).
		WithDetail("format", s)
}

// Resolve replaces FormatAuto with what out can display: FormatTerminal
// for a color capable terminal, FormatText for anything else. Explicit
// formats are returned unchanged.
func Resolve(f Format, out io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	file, ok := out.(*os.File)
	if !ok {
		return FormatText
	}
	return DetectFormat(file)
}

// DetectFormat picks FormatTerminal or FormatText for output.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
