package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for input, want := range tests {
		assert.Equal(t, want, NewLogger(input).GetLevel(), "level for %q", input)
	}
}

func TestInit_ReplacesLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	Init("debug")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.NotSame(t, prev, Log)
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("Debug"))
	assert.False(t, ValidLevel("loud"))
}
