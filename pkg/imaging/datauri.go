// Package imaging is the image-encoding collaborator: it turns an image
// file into a self-contained data URI string. The journal core treats the
// result as opaque, usable directly as a post image or an avatar.
package imaging

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxImageBytes caps how large an encoded image may get. The whole journal
// lives in one JSON file, so a huge picture would bloat every save.
const maxImageBytes = 8 << 20

// EncodeFile reads the image at path and returns it as a data URI. Non-image
// files and oversized files are rejected.
func EncodeFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("imaging: read %s: %w", path, err)
	}
	if len(b) > maxImageBytes {
		return "", fmt.Errorf("imaging: %s is %d bytes, above the %d byte limit", path, len(b), maxImageBytes)
	}

	mimeType := http.DetectContentType(b)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("imaging: %s is not an image (detected %s)", path, mimeType)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// IsDataURI reports whether s already looks like an encoded image, so
// callers can pass through values that need no conversion.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}
