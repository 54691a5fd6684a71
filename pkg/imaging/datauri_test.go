package imaging

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 1x1 transparent PNG.
var tinyPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestEncodeFile(t *testing.T) {
	t.Run("encodes a png to a data uri", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dot.png")
		require.NoError(t, os.WriteFile(path, tinyPNG, 0o600))

		uri, err := EncodeFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
		require.NoError(t, err)
		assert.Equal(t, tinyPNG, decoded)
	})

	t.Run("rejects non-image files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))

		_, err := EncodeFile(path)
		assert.ErrorContains(t, err, "not an image")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := EncodeFile(filepath.Join(t.TempDir(), "nope.png"))
		assert.Error(t, err)
	})
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,AAAA"))
	assert.False(t, IsDataURI("/home/me/picture.png"))
	assert.False(t, IsDataURI("data:text/plain;base64,AAAA"))
}
