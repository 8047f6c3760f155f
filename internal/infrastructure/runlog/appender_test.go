package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppender_AppendsExactlyOneLinePerRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "execution.log")
	appender := NewAppender(path)
	at := time.Date(2026, 8, 30, 14, 5, 0, 0, time.Local)

	require.NoError(t, appender.AppendCompletion(at, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "2026-08-30 14:05:00")
	assert.Contains(t, lines[0], "completed")
}

func TestAppender_RecordsFailedRunsToo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "execution.log")
	appender := NewAppender(path)

	require.NoError(t, appender.AppendCompletion(time.Now(), 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exit 3")
}

func TestAppender_DoesNotTruncateExistingLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "execution.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))
	appender := NewAppender(path)

	require.NoError(t, appender.AppendCompletion(time.Now(), 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "earlier run", lines[0])
}
