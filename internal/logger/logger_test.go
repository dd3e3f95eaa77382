package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DEBUG},
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{"fatal", FATAL},
		{"  Info  ", INFO},
		{"unknown", INFO},
		{"", INFO},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseLevel(tc.input), "input %q", tc.input)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(WARN, "test", &buf)

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("visible warn")
	log.Error("visible error")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.NotContains(t, out, "hidden info")
	assert.Contains(t, out, "[WARN][test] visible warn")
	assert.Contains(t, out, "[ERROR][test] visible error")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(INFO, "parent", &buf)

	child := log.WithComponent("child")
	child.Info("from child %d", 1)

	assert.Contains(t, buf.String(), "[INFO][child] from child 1")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(ERROR, "test", &buf)

	log.Info("before")
	log.SetLevel(DEBUG)
	log.Info("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}
