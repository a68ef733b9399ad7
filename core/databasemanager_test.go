package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		gorm     logger.LogLevel
	}{
		{"silent", LogLevelSilent, logger.Silent},
		{"ERROR", LogLevelError, logger.Error},
		{" info ", LogLevelInfo, logger.Info},
		{"warn", LogLevelWarn, logger.Warn},
		{"", LogLevelWarn, logger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.gorm, level.gorm())
		})
	}
}

func TestNewRejectsUnknownDialect(t *testing.T) {
	_, err := New("sqlite", "file::memory:", 1, LogLevelSilent)
	assert.ErrorContains(t, err, "unsupported dialect")
}
