package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimijournal/mimi/pkg/journal"
	"github.com/mimijournal/mimi/pkg/store"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.json")
	fs, err := store.NewFileStore(path)
	require.NoError(t, err)
	return New(store.NewCodec(fs, nil)), path
}

// reload opens a fresh codec over the same file, observing only what was
// actually persisted.
func reload(t *testing.T, path string) *store.Codec {
	t.Helper()
	fs, err := store.NewFileStore(path)
	require.NoError(t, err)
	return store.NewCodec(fs, nil)
}

func TestNewStartsWithDefaults(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, journal.GuestUser(), a.User())
	assert.Empty(t, a.Posts())
	assert.Equal(t, journal.Stats{}, a.Stats())
}

func TestCreatePostPersistsFeedAndStats(t *testing.T) {
	a, path := newTestApp(t)

	post, ok, err := a.CreatePost("first entry", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, journal.GuestUser(), post.Author)

	codec := reload(t, path)
	loaded := codec.LoadPosts()
	require.Len(t, loaded, 1)
	assert.Equal(t, post.ID, loaded[0].ID)
	assert.Equal(t, "first entry", loaded[0].Content)

	stats := codec.LoadStats()
	assert.Equal(t, 0, stats.Level)
	assert.InDelta(t, 33.34, stats.Experience, 1e-9)
}

func TestCreatePostPrependsAndLevels(t *testing.T) {
	a, _ := newTestApp(t)

	var last journal.Post
	for i := 0; i < 3; i++ {
		p, _, err := a.CreatePost("entry", "")
		require.NoError(t, err)
		last = p
	}

	posts := a.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, last.ID, posts[0].ID)

	assert.Equal(t, journal.Stats{Level: 1, Experience: 0}, a.Stats())
}

func TestCreatePostValidation(t *testing.T) {
	t.Run("empty content and image is a no-op", func(t *testing.T) {
		a, path := newTestApp(t)

		_, ok, err := a.CreatePost("", "")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Empty(t, a.Posts())
		assert.Equal(t, journal.Stats{}, a.Stats())
		codec := reload(t, path)
		assert.Empty(t, codec.LoadPosts())
		assert.Equal(t, journal.Stats{}, codec.LoadStats())
	})

	t.Run("whitespace-only content is a no-op", func(t *testing.T) {
		a, _ := newTestApp(t)

		_, ok, err := a.CreatePost("   \n ", "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, a.Posts())
	})

	t.Run("image-only posts are allowed", func(t *testing.T) {
		a, _ := newTestApp(t)

		post, ok, err := a.CreatePost("", "data:image/png;base64,AAAA")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, post.Content)
		require.Len(t, a.Posts(), 1)
		assert.InDelta(t, 33.34, a.Stats().Experience, 1e-9)
	})

	t.Run("content is trimmed", func(t *testing.T) {
		a, _ := newTestApp(t)

		post, ok, err := a.CreatePost("  a quiet day  ", "")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "a quiet day", post.Content)
	})
}

func TestToggleSaveRoundTrip(t *testing.T) {
	a, path := newTestApp(t)
	post, _, err := a.CreatePost("entry", "")
	require.NoError(t, err)

	require.NoError(t, a.ToggleSave(post.ID))
	loaded := reload(t, path).LoadPosts()
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].IsSaved)

	require.NoError(t, a.ToggleSave(post.ID))
	loaded = reload(t, path).LoadPosts()
	assert.False(t, loaded[0].IsSaved)
}

func TestDeletePostKeepsStats(t *testing.T) {
	a, path := newTestApp(t)
	post, _, err := a.CreatePost("entry", "")
	require.NoError(t, err)

	require.NoError(t, a.DeletePost(post.ID))

	codec := reload(t, path)
	assert.Empty(t, codec.LoadPosts())
	// Deleting never takes experience back.
	assert.InDelta(t, 33.34, codec.LoadStats().Experience, 1e-9)
}

func TestAddComment(t *testing.T) {
	t.Run("persists the comment on the right post", func(t *testing.T) {
		a, path := newTestApp(t)
		post, _, err := a.CreatePost("entry", "")
		require.NoError(t, err)

		comment, ok, err := a.AddComment(post.ID, "a thought")
		require.NoError(t, err)
		require.True(t, ok)

		loaded := reload(t, path).LoadPosts()
		require.Len(t, loaded, 1)
		require.Len(t, loaded[0].Comments, 1)
		assert.Equal(t, comment.ID, loaded[0].Comments[0].ID)
		assert.Equal(t, "a thought", loaded[0].Comments[0].Content)
	})

	t.Run("blank content is a no-op", func(t *testing.T) {
		a, _ := newTestApp(t)
		post, _, err := a.CreatePost("entry", "")
		require.NoError(t, err)

		_, ok, err := a.AddComment(post.ID, "   ")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, a.Posts()[0].Comments)
	})

	t.Run("comments do not advance the counter", func(t *testing.T) {
		a, _ := newTestApp(t)
		post, _, err := a.CreatePost("entry", "")
		require.NoError(t, err)
		before := a.Stats()

		_, _, err = a.AddComment(post.ID, "a thought")
		require.NoError(t, err)
		assert.Equal(t, before, a.Stats())
	})
}

func TestDeleteComment(t *testing.T) {
	a, path := newTestApp(t)
	post, _, err := a.CreatePost("entry", "")
	require.NoError(t, err)

	keep, ok, err := a.AddComment(post.ID, "keep")
	require.NoError(t, err)
	require.True(t, ok)
	drop, ok, err := a.AddComment(post.ID, "drop")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, a.DeleteComment(post.ID, drop.ID))

	loaded := reload(t, path).LoadPosts()
	require.Len(t, loaded[0].Comments, 1)
	assert.Equal(t, keep.ID, loaded[0].Comments[0].ID)
}

func TestUpdateProfile(t *testing.T) {
	t.Run("persists the new identity", func(t *testing.T) {
		a, path := newTestApp(t)

		ok, err := a.UpdateProfile("Mimi", "data:image/png;base64,AAAA")
		require.NoError(t, err)
		require.True(t, ok)

		loaded := reload(t, path).LoadUser()
		assert.Equal(t, "Mimi", loaded.Name)
		assert.Equal(t, journal.GuestUserID, loaded.ID)
	})

	t.Run("blank name is rejected without persisting", func(t *testing.T) {
		a, path := newTestApp(t)

		ok, err := a.UpdateProfile("   ", "data:image/png;base64,AAAA")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, journal.GuestUser(), reload(t, path).LoadUser())
	})

	t.Run("existing posts keep their author snapshot", func(t *testing.T) {
		a, _ := newTestApp(t)
		_, err := a.UpdateProfile("Mimi", journal.BlankAvatar)
		require.NoError(t, err)
		post, _, err := a.CreatePost("entry", "")
		require.NoError(t, err)

		_, err = a.UpdateProfile("Tama", journal.BlankAvatar)
		require.NoError(t, err)

		assert.Equal(t, "Mimi", a.Posts()[0].Author.Name)
		assert.Equal(t, post.ID, a.Posts()[0].ID)
	})
}

func TestStateSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	fs, err := store.NewFileStore(path)
	require.NoError(t, err)
	a := New(store.NewCodec(fs, nil))

	_, err = a.UpdateProfile("Mimi", journal.BlankAvatar)
	require.NoError(t, err)
	post, _, err := a.CreatePost("before restart", "")
	require.NoError(t, err)
	_, _, err = a.AddComment(post.ID, "still here")
	require.NoError(t, err)

	// Same file, fresh controller: everything comes back.
	fs2, err := store.NewFileStore(path)
	require.NoError(t, err)
	b := New(store.NewCodec(fs2, nil))

	assert.Equal(t, "Mimi", b.User().Name)
	require.Len(t, b.Posts(), 1)
	assert.Equal(t, post.ID, b.Posts()[0].ID)
	require.Len(t, b.Posts()[0].Comments, 1)
	assert.InDelta(t, 33.34, b.Stats().Experience, 1e-9)
}

func TestVisibleUsesCurrentFeed(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := a.UpdateProfile("Mimi", journal.BlankAvatar)
	require.NoError(t, err)

	p1, _, err := a.CreatePost("Hello World", "")
	require.NoError(t, err)
	_, _, err = a.CreatePost("rainy afternoon", "")
	require.NoError(t, err)

	visible := a.Visible(journal.ViewHome, "", "hello")
	require.Len(t, visible, 1)
	assert.Equal(t, p1.ID, visible[0].ID)

	today := time.Now().Local().Format(journal.DayFormat)
	assert.Len(t, a.Visible(journal.ViewMemories, today, ""), 2)
}
