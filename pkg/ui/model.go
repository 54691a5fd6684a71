// Package ui renders the journal as a Bubble Tea terminal application. It
// is a pure presentation layer: every state change goes through the app
// controller, and everything shown derives from the controller's aggregates
// plus the local view/search/date selections.
package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/mimijournal/mimi/pkg/app"
	"github.com/mimijournal/mimi/pkg/i18n"
	"github.com/mimijournal/mimi/pkg/journal"
	"github.com/mimijournal/mimi/pkg/logging"
)

// inputMode says which (if any) input control owns the keyboard.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeCompose
	modeComposeFeeling
	modeComposeImage
	modeComment
	modeSearch
	modeDate
	modeProfileName
	modeProfileAvatar
	modeDoodle
)

// Model is the Bubble Tea model for the journal TUI.
type Model struct {
	app    *app.App
	bundle *i18n.Bundle
	logger *logging.Logger

	// Filter selections, exactly the inputs of journal.Visible.
	view         journal.View
	selectedDate string
	searchQuery  string

	// Feed navigation. cursor indexes into the currently visible posts;
	// commentCursor indexes into the selected post's comments, -1 meaning
	// no comment selected.
	cursor        int
	commentCursor int

	viewport viewport.Model
	compose  textarea.Model
	input    textinput.Model
	gauge    progress.Model

	mode inputMode

	// pendingContent and pendingFeeling carry compose state while the
	// optional feeling and image prompts run; pendingName does the same for
	// the profile flow.
	pendingContent string
	pendingFeeling string
	pendingName    string

	// pageSize caps how many post cards one screenful renders; the cursor
	// pages through the rest.
	pageSize int

	status  string
	isError bool

	width  int
	height int
	ready  bool
}

const defaultPageSize = 20

// New builds the initial model around an app controller and a string bundle.
func New(a *app.App, bundle *i18n.Bundle, logger *logging.Logger, pageSize int) *Model {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	compose := textarea.New()
	compose.Placeholder = bundle.T("composePlaceholder", nil)
	compose.CharLimit = 0
	compose.SetHeight(4)

	input := textinput.New()

	gauge := progress.New(progress.WithDefaultGradient())
	gauge.Width = 24

	return &Model{
		app:           a,
		bundle:        bundle,
		logger:        logger,
		view:          journal.ViewHome,
		commentCursor: -1,
		pageSize:      pageSize,
		compose:       compose,
		input:         input,
		gauge:         gauge,
	}
}

// visible returns the posts for the current selections.
func (m *Model) visible() []journal.Post {
	return m.app.Visible(m.view, m.selectedDate, m.searchQuery)
}

// selectedPost returns the post under the cursor, if any.
func (m *Model) selectedPost() (journal.Post, bool) {
	posts := m.visible()
	if m.cursor < 0 || m.cursor >= len(posts) {
		return journal.Post{}, false
	}
	return posts[m.cursor], true
}

// clampCursor keeps the cursor inside the visible feed after the feed or the
// filters change, and resets comment selection when it moves off its post.
func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampCommentCursor()
}

func (m *Model) clampCommentCursor() {
	post, ok := m.selectedPost()
	if !ok || len(post.Comments) == 0 {
		m.commentCursor = -1
		return
	}
	if m.commentCursor >= len(post.Comments) {
		m.commentCursor = len(post.Comments) - 1
	}
}

func (m *Model) setStatus(key string, params map[string]string) {
	m.status = m.bundle.T(key, params)
	m.isError = false
}

func (m *Model) setError(err error) {
	m.logger.Errorf("intent failed: %v", err)
	m.status = m.bundle.T("saveFailed", map[string]string{"error": err.Error()})
	m.isError = true
}
