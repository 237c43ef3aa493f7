package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the card's log file, relative to the working directory.
const LogFilePath = "logs/card.txt"

// Level tags a log line.
type Level string

const (
	Info Level = "INFO"
	Warn Level = "WARN"
)

// Logger keeps recent lines in memory (for the on-screen debug overlay) and appends
// every line to a file on disk.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	max   int
	now   func() time.Time
}

// New returns a Logger writing to LogFilePath and ensures its directory exists.
func New() *Logger {
	return NewAt(LogFilePath)
}

// NewAt returns a Logger writing to path. An empty path keeps lines in memory only.
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, max: 200, now: time.Now}
}

// Log records line at Info level.
func (l *Logger) Log(line string) {
	l.write(Info, line)
}

// Infof formats and records an Info line.
func (l *Logger) Infof(format string, args ...any) {
	l.write(Info, fmt.Sprintf(format, args...))
}

// Warnf formats and records a Warn line.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(Warn, fmt.Sprintf(format, args...))
}

// write stamps the line as "[timestamp] LEVEL line", keeps the newest max lines and appends to the file.
func (l *Logger) write(level Level, line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + string(level) + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the retained lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
