package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelForVerbosity(tt.verbosity))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	SetupLogger(1)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logPath := filepath.Join(tempDir, "emailnotify", "emailnotify.log")
	_, err := os.Stat(logPath)
	assert.NoError(t, err, "log file should be created")
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "emailnotify", "emailnotify.log"), getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.Contains(t, filepath.ToSlash(got), ".local/state/emailnotify/emailnotify.log")
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("rules")
	logger.Info().Msg("matched")

	assert.Contains(t, buf.String(), `"component":"rules"`)
	assert.Contains(t, buf.String(), "matched")
}

func TestLogInvocation(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogInvocation("send", []string{"disk", "91%"})

	output := buf.String()
	assert.Contains(t, output, "send")
	assert.Contains(t, output, "91%")
	assert.Contains(t, output, "Invocation")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "dispatch")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
