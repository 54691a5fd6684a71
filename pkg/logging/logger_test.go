package logging

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("test")
	require.NoError(t, err)
	defer logger.Close()

	assert.NotEmpty(t, logger.SessionID())
	assert.NotEmpty(t, logger.LogPath())

	logger.Infof("hello %s", "journal")
	logger.Warnf("watch out")

	b, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)
	content := string(b)
	assert.Contains(t, content, "[test] [INFO] hello journal")
	assert.Contains(t, content, "[test] [WARN] watch out")
}

func TestSessionIDIsShared(t *testing.T) {
	a, err := NewLogger("component-a")
	require.NoError(t, err)
	defer a.Close()
	b, err := NewLogger("component-b")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, a.SessionID(), b.SessionID())
	assert.Equal(t, a.LogPath(), b.LogPath())
}

func TestCloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger("closer")
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestLogLineShape(t *testing.T) {
	logger, err := NewLogger("shape")
	require.NoError(t, err)
	defer logger.Close()

	logger.Debugf("checking format")

	b, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)

	var found bool
	for _, line := range strings.Split(string(b), "\n") {
		if strings.Contains(line, "checking format") {
			found = true
			// [timestamp] [component] [level] message
			assert.True(t, strings.HasPrefix(line, "["), "line should start with a timestamp: %q", line)
			assert.Contains(t, line, "[shape] [DEBUG]")
		}
	}
	assert.True(t, found)
}
