// Package app owns the journal's application state: the current user, the
// post feed and the gamification counter. State changes only through the
// intent methods below, each of which runs the matching pure mutator from
// pkg/journal and then immediately persists the touched aggregate through
// the store codec. That pairing is explicit here rather than an implicit
// side effect, so it can be tested directly.
package app

import (
	"strings"
	"sync"
	"time"

	"github.com/mimijournal/mimi/pkg/journal"
	"github.com/mimijournal/mimi/pkg/store"
)

// test hook
var timeNow = time.Now

// App holds the three aggregates and the codec that persists them. Methods
// are safe for concurrent use, though the TUI event loop is the only caller
// in practice and intents run strictly one after another.
type App struct {
	mu    sync.Mutex
	codec *store.Codec

	user  journal.User
	posts []journal.Post
	stats journal.Stats
}

// New loads all three aggregates from the codec and returns the controller.
// Missing or corrupt records come back as their documented defaults, so New
// never fails on bad data.
func New(codec *store.Codec) *App {
	return &App{
		codec: codec,
		user:  codec.LoadUser(),
		posts: codec.LoadPosts(),
		stats: codec.LoadStats(),
	}
}

// User returns the current user snapshot.
func (a *App) User() journal.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

// Posts returns a copy of the feed in most-recent-first order.
func (a *App) Posts() []journal.Post {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]journal.Post, len(a.posts))
	copy(out, a.posts)
	return out
}

// Stats returns the current gamification counter.
func (a *App) Stats() journal.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// CreatePost prepends a new post authored by the current user and applies
// the post reward to the counter. Content is trimmed; a post with neither
// content nor image is a validation no-op (ok is false, nothing persisted,
// no experience awarded). The new state takes effect in memory even when a
// save fails; the write error is still returned so the caller can surface
// it.
func (a *App) CreatePost(content, image string) (journal.Post, bool, error) {
	content = strings.TrimSpace(content)
	if content == "" && image == "" {
		return journal.Post{}, false, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	post := journal.NewPost(a.user, content, image, timeNow())
	a.posts = journal.Prepend(a.posts, post)
	a.stats = journal.ApplyPostReward(a.stats)

	if err := a.codec.SavePosts(a.posts); err != nil {
		return post, true, err
	}
	return post, true, a.codec.SaveStats(a.stats)
}

// ToggleSave flips the bookmark flag on the given post and persists the feed.
func (a *App) ToggleSave(postID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.posts = journal.ToggleSave(a.posts, postID)
	return a.codec.SavePosts(a.posts)
}

// DeletePost removes the given post and its comments and persists the feed.
// Deleting a post does not touch the gamification counter.
func (a *App) DeletePost(postID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.posts = journal.DeletePost(a.posts, postID)
	return a.codec.SavePosts(a.posts)
}

// AddComment appends a comment by the current user to the given post.
// Content that trims to empty is a validation no-op: nothing changes, no
// error is returned, and ok is false.
func (a *App) AddComment(postID, content string) (journal.Comment, bool, error) {
	if strings.TrimSpace(content) == "" {
		return journal.Comment{}, false, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	comment := journal.NewComment(a.user, content, timeNow())
	a.posts = journal.AddComment(a.posts, postID, comment)
	return comment, true, a.codec.SavePosts(a.posts)
}

// DeleteComment removes one comment from the given post and persists the feed.
func (a *App) DeleteComment(postID, commentID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.posts = journal.DeleteComment(a.posts, postID, commentID)
	return a.codec.SavePosts(a.posts)
}

// UpdateProfile replaces the current user's name and avatar. A name that
// trims to empty is a validation no-op (ok is false, nothing persisted).
// Posts and comments keep the author snapshots they were created with.
func (a *App) UpdateProfile(name, avatar string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, ok := journal.UpdateProfile(a.user, name, avatar)
	if !ok {
		return false, nil
	}
	a.user = next
	return true, a.codec.SaveUser(a.user)
}

// Visible derives the posts to display for the given view, selected day and
// search query. Pure read; the returned slice is the caller's to keep.
func (a *App) Visible(view journal.View, selectedDate, query string) []journal.Post {
	return journal.Visible(a.Posts(), view, selectedDate, query)
}
