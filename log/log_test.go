package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "error", want: LogLevelError},
		{in: "warn", want: LogLevelWarn},
		{in: "info", want: LogLevelInfo},
		{in: "debug", want: LogLevelDebug},
		{in: "trace", want: LogLevelTrace},
		{in: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.in, got.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0, LogLevelWarn)

	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("menu %q not found", "magic")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, `menu "magic" not found`, entry["msg"])
}

func TestSetDefaultLogger(t *testing.T) {
	prev := defaultLogger
	defer SetDefaultLogger(prev)

	var buf bytes.Buffer
	SetDefaultLogger(New(&buf, "", 0, LogLevelError))
	Info("hidden")
	assert.Empty(t, buf.String())

	SetDefaultLogger(New(&buf, "", 0, LogLevelTrace))
	Trace("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
