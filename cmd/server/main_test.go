package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name          string
		level, format string
		wantLevel     logrus.Level
		wantJSON      bool
	}{
		{name: "json debug", level: "debug", format: "json", wantLevel: logrus.DebugLevel, wantJSON: true},
		{name: "text warn", level: "warn", format: "TEXT", wantLevel: logrus.WarnLevel},
		{name: "invalid level falls back", level: "loud", format: "json", wantLevel: logrus.InfoLevel, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := setupLogger(tt.level, tt.format)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.NotNil(t, serveCmd.Flags().Lookup("secure-cookie"))
}
