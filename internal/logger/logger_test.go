package logger_test

import (
	"bytes"
	"testing"

	"cardoctor/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"", false, true},
		{"INFO", false, true},
		{"warn", false, false},
		{"error", false, false},
	}

	for _, test := range tests {
		t.Run(test.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(&buf, test.level)

			log.Debug("debug line")
			log.Info("info line")

			assert.Equal(t, test.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, test.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")))
		})
	}
}
