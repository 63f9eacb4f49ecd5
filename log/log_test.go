package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		v, err := oj.ParseString(line)
		require.NoError(t, err, line)
		out = append(out, v.(map[string]any))
	}
	return out
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Named("pipeline").Info("decoded", String("kind", "event"), Uint8("id", 3))
	require.NoError(t, l.Sync())

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "decoded", got[0]["msg"])
	assert.Equal(t, "pipeline", got[0]["logger"])
	assert.Equal(t, "event", got[0]["kind"])
	assert.Equal(t, int64(3), got[0]["id"])
}

func TestNewFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Format: "json", Filter: "debug:pipeline info:*", Output: &buf})
	require.NoError(t, err)

	l.Named("pipeline").Debug("kept")
	l.Named("hub").Debug("dropped")
	l.Named("hub").Info("kept too")

	got := lines(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "kept", got[0]["msg"])
	assert.Equal(t, "kept too", got[1]["msg"])
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"level", Config{Level: "loud"}},
		{"format", Config{Format: "xml"}},
		{"filter", Config{Filter: "loud:*"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestResetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { ResetDefault(prev) })

	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "text", Output: &buf})
	require.NoError(t, err)
	ResetDefault(l)

	Info("not shown")
	Warn("shown", ErrorField(assert.AnError))
	assert.NotContains(t, buf.String(), "not shown")
	assert.Contains(t, buf.String(), "shown")
	assert.True(t, Default().Enabled(ErrorLevel))
	assert.False(t, Default().Enabled(InfoLevel))
}
