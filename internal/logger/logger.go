package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/lifeboat).
const LogFilePath = "logs/lifeboat.log"

// maxLines bounds the in-memory history; older lines are dropped first.
const maxLines = 256

// Logger tees zap entries to a JSON log file on disk and to an in-memory list of
// console-formatted lines (used by the debug overlay and tests).
type Logger struct {
	zap  *zap.Logger
	file *os.File

	mu    sync.Mutex
	lines []string
}

// New returns a Logger writing to path at level and above. If the file cannot be
// opened the logger still works, memory only.
func New(path string, level zapcore.Level) *Logger {
	l := &Logger{lines: make([]string, 0, maxLines)}
	console := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(console, zapcore.AddSync(memorySink{l}), level),
	}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			l.file = f
			jsonEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
			cores = append(cores, zapcore.NewCore(jsonEnc, zapcore.Lock(f), level))
		}
	}
	l.zap = zap.New(zapcore.NewTee(cores...))
	if path != "" && l.file == nil {
		l.zap.Warn("log file unavailable, logging to memory only", zap.String("path", path))
	}
	return l
}

// Zap returns the underlying structured logger, for handing to components.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// Log records line at info level.
func (l *Logger) Log(line string) {
	l.zap.Info(line)
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.zap.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == maxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLines-1]
	}
	l.lines = append(l.lines, line)
}

// memorySink receives one encoded entry per Write.
type memorySink struct {
	l *Logger
}

func (m memorySink) Write(p []byte) (int, error) {
	m.l.append(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
