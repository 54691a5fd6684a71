package journal

import "strings"

// View selects which slice of the journal is on screen.
type View string

const (
	ViewHome     View = "home"
	ViewSaved    View = "saved"
	ViewDoodle   View = "doodle" // drawing surface; not post-list driven
	ViewMemories View = "memories"
)

// DayFormat is the calendar-day layout used by the memories filter and the
// date input.
const DayFormat = "2006-01-02"

// Visible derives the posts to display from the full feed, the current view,
// the selected calendar day and the search query. Each rule narrows the
// previous result and none reorder, so the output keeps the feed's
// most-recent-first order.
func Visible(posts []Post, view View, selectedDate, query string) []Post {
	out := make([]Post, 0, len(posts))
	out = append(out, posts...)

	switch view {
	case ViewSaved:
		out = keep(out, func(p Post) bool { return p.IsSaved })
	case ViewMemories:
		if selectedDate != "" {
			out = keep(out, func(p Post) bool {
				return p.Timestamp.Local().Format(DayFormat) == selectedDate
			})
		}
	case ViewHome, ViewDoodle:
		// Home shows the whole feed. The doodle view renders the drawing
		// surface instead of the feed and never consults this filter.
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		out = keep(out, func(p Post) bool {
			return strings.Contains(strings.ToLower(p.Content), q) ||
				strings.Contains(strings.ToLower(p.Author.Name), q)
		})
	}
	return out
}

func keep(posts []Post, pred func(Post) bool) []Post {
	out := posts[:0]
	for _, p := range posts {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
