// Package journal holds the domain model of the offline social journal:
// the single user identity, the post feed with its comments, the
// level/experience counter, and the pure transformations over them.
// The package performs no I/O; persistence lives in pkg/store.
package journal

import "time"

// GuestUserID is the sentinel identity id used before a profile has been set.
const GuestUserID = "guest"

// BlankAvatar is the light-gray placeholder avatar shown until the user
// uploads a picture of their own. It is a self-contained SVG data URI.
const BlankAvatar = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="%23f3f4f6"%3E%3Crect width="24" height="24" /%3E%3C/svg%3E`

// User is the journal's single identity. Exactly one current user exists at
// a time; it is only ever overwritten, never deleted.
type User struct {
	ID     string
	Name   string
	Avatar string // image data URI, treated as an opaque string
}

// GuestUser returns the default identity used on first launch.
func GuestUser() User {
	return User{ID: GuestUserID, Name: " ", Avatar: BlankAvatar}
}

// Comment is a reaction attached to a post. The author is embedded as a
// value snapshot taken at creation time, so later profile edits do not
// rewrite history. A comment is owned exclusively by its parent post.
type Comment struct {
	ID        string
	Author    User
	Content   string
	Timestamp time.Time
}

// Post is a single journal entry. Comments are kept in insertion order,
// which is also chronological order.
type Post struct {
	ID        string
	Author    User // value snapshot, like Comment.Author
	Content   string
	Image     string // optional data URI; empty means no image
	Likes     int
	Comments  []Comment
	Timestamp time.Time
	IsSaved   bool
}

// Stats is the gamification counter. Experience stays in [0, 100); crossing
// the threshold rolls it back to zero and increments the level.
type Stats struct {
	Level      int
	Experience float64
}
