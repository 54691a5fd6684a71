package journal

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NewPostID generates a unique, time-derived post identifier. The unix
// millisecond prefix keeps ids roughly ordered by creation time; the random
// suffix keeps two creations within the same millisecond distinct.
func NewPostID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), randomSuffix())
}

// NewCommentID generates a unique comment identifier. Uniqueness is only
// required within the parent post, but the same scheme is used for both.
func NewCommentID(now time.Time) string {
	return fmt.Sprintf("c%d-%s", now.UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// The OS crypto source failing is an unrecoverable application state.
		panic(fmt.Errorf("crypto/rand failed: %w", err))
	}
	return fmt.Sprintf("%x", b)
}
