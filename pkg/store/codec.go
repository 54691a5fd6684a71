package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mimijournal/mimi/pkg/journal"
)

// Record keys are versioned so a future schema change can migrate by writing
// under new keys and abandoning the old ones.
const (
	UserKey  = "mimi_user_v4"
	PostsKey = "mimi_posts_v4"
	StatsKey = "mimi_stats_v4"
)

// Logger is the subset of the application logger the codec reports recovered
// parse failures through.
type Logger interface {
	Warnf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...interface{}) {}

// Codec round-trips the three aggregates through a Store. Loads are total:
// a missing or corrupt record degrades to the documented default and is
// logged, never surfaced as a failure. Saves serialize the whole aggregate
// and propagate write failures.
type Codec struct {
	store  Store
	logger Logger
}

// NewCodec creates a codec over the given store. A nil logger disables
// parse-failure logging.
func NewCodec(store Store, logger Logger) *Codec {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Codec{store: store, logger: logger}
}

// Persisted record shapes. Timestamps serialize as ISO-8601 strings and are
// explicitly re-hydrated on load, at both the post and the comment level.
type userRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type commentRecord struct {
	ID        string     `json:"id"`
	Author    userRecord `json:"author"`
	Content   string     `json:"content"`
	Timestamp string     `json:"timestamp"`
}

type postRecord struct {
	ID        string          `json:"id"`
	Author    userRecord      `json:"author"`
	Content   string          `json:"content"`
	Image     string          `json:"image,omitempty"`
	Likes     int             `json:"likes"`
	Comments  []commentRecord `json:"comments"`
	Timestamp string          `json:"timestamp"`
	IsSaved   bool            `json:"isSaved"`
}

type statsRecord struct {
	Level      int     `json:"level"`
	Experience float64 `json:"experience"`
}

// LoadUser reads the user record. Absence or a parse failure yields the
// guest sentinel; no error reaches the caller.
func (c *Codec) LoadUser() journal.User {
	raw, ok := c.store.Get(UserKey)
	if !ok {
		return journal.GuestUser()
	}
	var rec userRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		c.logger.Warnf("corrupt user record, falling back to guest: %v", err)
		return journal.GuestUser()
	}
	return journal.User{ID: rec.ID, Name: rec.Name, Avatar: rec.Avatar}
}

// LoadPosts reads the post feed. Absence yields an empty feed. A parse
// failure anywhere in the record, including an unparseable timestamp on a
// post or one of its comments, logs and yields an empty feed rather than
// partial data.
func (c *Codec) LoadPosts() []journal.Post {
	raw, ok := c.store.Get(PostsKey)
	if !ok {
		return []journal.Post{}
	}
	var recs []postRecord
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		c.logger.Warnf("corrupt posts record, starting with an empty feed: %v", err)
		return []journal.Post{}
	}

	posts := make([]journal.Post, len(recs))
	for i, rec := range recs {
		p, err := decodePost(rec)
		if err != nil {
			c.logger.Warnf("corrupt posts record, starting with an empty feed: %v", err)
			return []journal.Post{}
		}
		posts[i] = p
	}
	return posts
}

// LoadStats reads the gamification counter. Absence or a parse failure
// yields the zero counter.
func (c *Codec) LoadStats() journal.Stats {
	raw, ok := c.store.Get(StatsKey)
	if !ok {
		return journal.Stats{}
	}
	var rec statsRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		c.logger.Warnf("corrupt stats record, resetting progression: %v", err)
		return journal.Stats{}
	}
	return journal.Stats{Level: rec.Level, Experience: rec.Experience}
}

// SaveUser overwrites the user record.
func (c *Codec) SaveUser(user journal.User) error {
	return c.save(UserKey, userRecord{ID: user.ID, Name: user.Name, Avatar: user.Avatar})
}

// SavePosts overwrites the posts record with the whole feed.
func (c *Codec) SavePosts(posts []journal.Post) error {
	recs := make([]postRecord, len(posts))
	for i, p := range posts {
		recs[i] = encodePost(p)
	}
	return c.save(PostsKey, recs)
}

// SaveStats overwrites the stats record.
func (c *Codec) SaveStats(stats journal.Stats) error {
	return c.save(StatsKey, statsRecord{Level: stats.Level, Experience: stats.Experience})
}

func (c *Codec) save(key string, record interface{}) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := c.store.Set(key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func encodePost(p journal.Post) postRecord {
	comments := make([]commentRecord, len(p.Comments))
	for i, cm := range p.Comments {
		comments[i] = commentRecord{
			ID:        cm.ID,
			Author:    userRecord{ID: cm.Author.ID, Name: cm.Author.Name, Avatar: cm.Author.Avatar},
			Content:   cm.Content,
			Timestamp: cm.Timestamp.Format(time.RFC3339Nano),
		}
	}
	return postRecord{
		ID:        p.ID,
		Author:    userRecord{ID: p.Author.ID, Name: p.Author.Name, Avatar: p.Author.Avatar},
		Content:   p.Content,
		Image:     p.Image,
		Likes:     p.Likes,
		Comments:  comments,
		Timestamp: p.Timestamp.Format(time.RFC3339Nano),
		IsSaved:   p.IsSaved,
	}
}

func decodePost(rec postRecord) (journal.Post, error) {
	ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return journal.Post{}, fmt.Errorf("store: post %s: bad timestamp %q: %w", rec.ID, rec.Timestamp, err)
	}

	comments := make([]journal.Comment, len(rec.Comments))
	for i, cm := range rec.Comments {
		cts, err := time.Parse(time.RFC3339Nano, cm.Timestamp)
		if err != nil {
			return journal.Post{}, fmt.Errorf("store: comment %s: bad timestamp %q: %w", cm.ID, cm.Timestamp, err)
		}
		comments[i] = journal.Comment{
			ID:        cm.ID,
			Author:    journal.User{ID: cm.Author.ID, Name: cm.Author.Name, Avatar: cm.Author.Avatar},
			Content:   cm.Content,
			Timestamp: cts,
		}
	}

	return journal.Post{
		ID:        rec.ID,
		Author:    journal.User{ID: rec.Author.ID, Name: rec.Author.Name, Avatar: rec.Author.Avatar},
		Content:   rec.Content,
		Image:     rec.Image,
		Likes:     rec.Likes,
		Comments:  comments,
		Timestamp: ts,
		IsSaved:   rec.IsSaved,
	}, nil
}
