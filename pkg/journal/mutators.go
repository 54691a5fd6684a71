package journal

import (
	"strings"
	"time"
)

// Mutators are pure transformations from current aggregate state plus an
// intent payload to new aggregate state. Inputs are never modified in place;
// callers pair each successful mutation with the matching persistence save.

// NewPost builds a fresh post authored by the given user: new unique id,
// empty comment list, zero likes, unsaved.
func NewPost(author User, content, image string, now time.Time) Post {
	return Post{
		ID:        NewPostID(now),
		Author:    author,
		Content:   content,
		Image:     image,
		Comments:  []Comment{},
		Timestamp: now,
	}
}

// NewComment builds a comment snapshot for the given author.
func NewComment(author User, content string, now time.Time) Comment {
	return Comment{
		ID:        NewCommentID(now),
		Author:    author,
		Content:   content,
		Timestamp: now,
	}
}

// Prepend inserts a post at the head of the feed, keeping the collection in
// most-recent-first order.
func Prepend(posts []Post, post Post) []Post {
	out := make([]Post, 0, len(posts)+1)
	out = append(out, post)
	return append(out, posts...)
}

// ToggleSave flips the bookmark flag on the matching post. An unknown id
// leaves the feed unchanged; untouched posts keep their relative order.
func ToggleSave(posts []Post, postID string) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		if p.ID == postID {
			p.IsSaved = !p.IsSaved
		}
		out[i] = p
	}
	return out
}

// DeletePost removes the matching post and, through exclusive ownership,
// every comment it holds. An unknown id is a no-op.
func DeletePost(posts []Post, postID string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != postID {
			out = append(out, p)
		}
	}
	return out
}

// AddComment appends a comment to the matching post, preserving the order of
// the comments already there. An unknown post id is a no-op; other posts are
// untouched.
func AddComment(posts []Post, postID string, comment Comment) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		if p.ID == postID {
			comments := make([]Comment, 0, len(p.Comments)+1)
			comments = append(comments, p.Comments...)
			p.Comments = append(comments, comment)
		}
		out[i] = p
	}
	return out
}

// DeleteComment removes one comment from the matching post. Either id being
// unknown leaves every post's content as it was.
func DeleteComment(posts []Post, postID, commentID string) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		if p.ID == postID {
			comments := make([]Comment, 0, len(p.Comments))
			for _, c := range p.Comments {
				if c.ID != commentID {
					comments = append(comments, c)
				}
			}
			p.Comments = comments
		}
		out[i] = p
	}
	return out
}

// UpdateProfile replaces the user's name and avatar. A name that trims to
// empty rejects the update: the input user is returned unchanged and the
// second return value is false.
func UpdateProfile(user User, name, avatar string) (User, bool) {
	if strings.TrimSpace(name) == "" {
		return user, false
	}
	user.Name = name
	user.Avatar = avatar
	return user, true
}
