package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC)
}

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "card.txt")
	l := NewAt(path)
	l.now = fixedClock

	l.Log("card opened")
	l.Warnf("deck: %d unknown shapes", 2)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "[2025-12-24 20:00:00] INFO card opened", lines[0])
	assert.Equal(t, "[2025-12-24 20:00:00] WARN deck: 2 unknown shapes", lines[1])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))
}

func TestLinesAreBounded(t *testing.T) {
	l := NewAt("")
	l.max = 3
	for i := 0; i < 5; i++ {
		l.Infof("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "line 2"))
	assert.True(t, strings.HasSuffix(lines[2], "line 4"))
}
