package decode

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/mock"
)

func datagrams(t *testing.T) [][]byte {
	t.Helper()
	out, err := mock.NewGenerator(7).Tick(1.0 / 60)
	require.NoError(t, err)
	return out
}

func hexInput(t *testing.T, raws ...[]byte) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("# recorded\n\n")
	for _, r := range raws {
		b.WriteString(hex.EncodeToString(r) + "\n")
	}
	return b.String()
}

func TestRunHexCompact(t *testing.T) {
	in := datagrams(t)
	var out bytes.Buffer
	err := run(nil, strings.NewReader(hexInput(t, in...)), &out, options{hex: true, compact: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(in))
	v, err := oj.ParseString(lines[0])
	require.NoError(t, err)
	assert.Equal(t, packet.CodeSessionStarted, v.(map[string]any)["event_string_code"])
}

func TestRunQuery(t *testing.T) {
	in := datagrams(t)
	var out bytes.Buffer
	err := run(nil, strings.NewReader(hexInput(t, in[1])), &out,
		options{hex: true, compact: true, query: "$.header.packet_id"})
	require.NoError(t, err)
	assert.Equal(t, "6\n", out.String())
}

func TestRunRawFiles(t *testing.T) {
	in := datagrams(t)
	dir := t.TempDir()
	var files []string
	for i, raw := range in[:2] {
		name := filepath.Join(dir, fmt.Sprintf("dgram%d.bin", i))
		require.NoError(t, os.WriteFile(name, raw, 0o600))
		files = append(files, name)
	}

	var out bytes.Buffer
	require.NoError(t, run(files, nil, &out, options{}))
	assert.Contains(t, out.String(), "\n  \"header\"")
	assert.Equal(t, 2, strings.Count(out.String(), "\"packet_format\""))
}

func TestRunDump(t *testing.T) {
	var out bytes.Buffer
	err := run(nil, bytes.NewReader(datagrams(t)[1]), &out, options{dump: true, query: "$.header"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "\"frame_identifier\"")
	assert.NotContains(t, out.String(), "\x1b[", "no colors")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  options
		want  string
	}{
		{"bad hex", "zz\n", options{hex: true}, "stdin:1"},
		{"short datagram", "0102\n", options{hex: true}, "shorter than header"},
		{"bad query", "", options{query: "$[[["}, "invalid query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(nil, strings.NewReader(tt.input), &bytes.Buffer{}, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "missing")}, nil, &bytes.Buffer{}, options{}))
}
