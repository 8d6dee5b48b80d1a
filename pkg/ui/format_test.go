package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat_FlagValues(t *testing.T) {
	tests := []struct {
		flag string
		want ui.Format
	}{
		{"", ui.FormatAuto},
		{"auto", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"Terminal", ui.FormatTerminal},
		{"text", ui.FormatText},
		{"plain", ui.FormatText},
		{" json ", ui.FormatJSON},
		{"YAML", ui.FormatYAML},
		{"yml", ui.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ui.ParseFormat("xml")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), `"xml"`)
	assert.Contains(t, err.Error(), "json or yaml")
	assert.Equal(t, "xml", errors.GetErrorDetails(err)["format"])
}

func TestFormat_CanonicalNamesRoundTrip(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		parsed, err := ui.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", ui.Format(99).String())
}

func TestResolve(t *testing.T) {
	t.Run("explicit format is kept", func(t *testing.T) {
		assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &bytes.Buffer{}))
		assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, &bytes.Buffer{}))
	})

	t.Run("auto on a buffer is text", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, &bytes.Buffer{}))
	})

	t.Run("auto on a regular file is text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		f, err := os.CreateTemp(t.TempDir(), "report")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f))
	})

	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})
}
