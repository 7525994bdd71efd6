package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggerWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lifeboat.log")
	l := New(path, zapcore.InfoLevel)

	l.Log("frame started")
	l.Zap().Warn("shape skipped", zap.Int("index", 3))
	l.Zap().Debug("below level")
	require.NoError(t, l.Close())

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "frame started")
	assert.Contains(t, lines[1], "shape skipped")
	assert.Contains(t, lines[1], `"index": 3`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"frame started"`)
	assert.Contains(t, string(data), `"index":3`)
	assert.NotContains(t, string(data), "below level")
}

func TestLoggerMemoryOnly(t *testing.T) {
	l := New("", zapcore.DebugLevel)
	l.Zap().Debug("hello")
	assert.Len(t, l.Lines(), 1)
	assert.NoError(t, l.Close())
}

func TestLoggerKeepsRecentLines(t *testing.T) {
	l := New("", zapcore.InfoLevel)
	for i := 0; i < maxLines+10; i++ {
		l.Log("line " + strconv.Itoa(i))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.Contains(t, lines[0], "line 10")
	assert.Contains(t, lines[maxLines-1], "line "+strconv.Itoa(maxLines+9))
}
