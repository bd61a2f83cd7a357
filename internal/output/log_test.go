package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})

	assert.Equal(t, log.InfoLevel, Logger().GetLevel())

	Debug("hidden")
	Logger().Info("shown", "artifacts", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "artifacts=3")
	assert.NotRegexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out), "timestamps are off by default")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Verbose: true, Writer: &buf})

	assert.Equal(t, log.DebugLevel, Logger().GetLevel())

	Debug("verbose-msg")
	assert.Contains(t, buf.String(), "verbose-msg")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, buf.String(), "verbose adds timestamps")
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})

	Warn("careful", "code", "no_discriminator")

	assert.Contains(t, buf.String(), "careful")
	assert.Contains(t, buf.String(), "code=no_discriminator")
}
