package ui

import (
	"fmt"
	"strings"

	"github.com/mimijournal/mimi/pkg/journal"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	sections := []string{
		m.buildHeader(),
		m.buildTabs(),
	}

	if m.view == journal.ViewDoodle {
		sections = append(sections, m.buildDoodle())
	} else {
		sections = append(sections, m.viewport.View())
	}

	if box := m.buildInputBox(); box != "" {
		sections = append(sections, box)
	}
	sections = append(sections, m.buildFooter())

	return strings.Join(sections, "\n")
}

// buildHeader renders the app name, the profile line and the level gauge.
func (m *Model) buildHeader() string {
	user := m.app.User()
	stats := m.app.Stats()

	title := headerStyle.Render(m.bundle.T("appName", nil)) + " " +
		taglineStyle.Render(m.bundle.T("tagline", nil)) + " " +
		noticeStyle.Render(m.bundle.T("offlineTag", nil))

	name := strings.TrimSpace(user.Name)
	if name == "" {
		name = "·"
	}
	profile := authorStyle.Render(name) + "  " +
		timeStyle.Render(m.bundle.T("level", map[string]string{
			"level": fmt.Sprintf("%d", stats.Level),
		})) + " " +
		m.gauge.ViewAs(stats.Experience/100) + " " +
		timeStyle.Render(m.bundle.T("levelProgress", map[string]string{
			"exp": fmt.Sprintf("%.0f", stats.Experience),
		}))

	return title + "\n" + profile
}

func (m *Model) buildTabs() string {
	tabs := []struct {
		view journal.View
		key  string
	}{
		{journal.ViewHome, "home"},
		{journal.ViewSaved, "saved"},
		{journal.ViewMemories, "memories"},
		{journal.ViewDoodle, "doodle"},
	}

	var b strings.Builder
	for i, tab := range tabs {
		label := fmt.Sprintf("%d %s", i+1, m.bundle.T(tab.key, nil))
		if tab.view == m.view {
			b.WriteString(activeTabStyle.Render(label))
		} else {
			b.WriteString(tabStyle.Render(label))
		}
	}
	if m.searchQuery != "" {
		b.WriteString(timeStyle.Render(" 🔍 " + m.searchQuery))
	}
	if m.view == journal.ViewMemories && m.selectedDate != "" {
		b.WriteString(timeStyle.Render(" 📅 " + m.selectedDate))
	}
	return b.String()
}

// buildFeed renders the visible posts into the viewport's content. At most
// pageSize cards appear at once; moving the cursor past the page boundary
// brings the next page in.
func (m *Model) buildFeed() string {
	posts := m.visible()
	if len(posts) == 0 {
		return m.buildEmptyState()
	}

	start := 0
	if len(posts) > m.pageSize {
		start = (m.cursor / m.pageSize) * m.pageSize
	}
	end := start + m.pageSize
	if end > len(posts) {
		end = len(posts)
	}

	cards := make([]string, 0, end-start+2)
	if m.view == journal.ViewHome {
		cards = append(cards, noticeStyle.Render(m.bundle.T("privacyNotice", nil)))
	}
	for i := start; i < end; i++ {
		cards = append(cards, m.buildPostCard(posts[i], i == m.cursor))
	}
	if len(posts) > m.pageSize {
		cards = append(cards, timeStyle.Render(
			fmt.Sprintf("··· %d-%d / %d", start+1, end, len(posts))))
	}
	return strings.Join(cards, "\n")
}

func (m *Model) buildPostCard(post journal.Post, selected bool) string {
	var b strings.Builder

	header := authorStyle.Render(post.Author.Name) + "  " +
		timeStyle.Render(post.Timestamp.Local().Format("2006-01-02 15:04"))
	if post.IsSaved {
		header += "  " + savedStyle.Render("★")
	}
	b.WriteString(header + "\n")

	b.WriteString(contentStyle.Render(post.Content))
	if post.Image != "" {
		b.WriteString("\n" + timeStyle.Render("🖼 image attached"))
	}
	if post.Likes > 0 {
		b.WriteString("\n" + timeStyle.Render(fmt.Sprintf("♥ %d", post.Likes)))
	}

	for i, comment := range post.Comments {
		line := comment.Author.Name + ": " + comment.Content
		style := commentStyle
		if selected && i == m.commentCursor {
			style = selectedCommentStyle
			line = "› " + line
		}
		b.WriteString("\n" + style.Render(line))
	}

	box := postBoxStyle
	if selected {
		box = selectedPostBoxStyle
	}
	return box.Width(maxInt(m.width-4, 20)).Render(b.String())
}

func (m *Model) buildEmptyState() string {
	var text string
	switch {
	case m.view == journal.ViewSaved:
		text = "✨ " + m.bundle.T("emptySaved", nil)
	case m.view == journal.ViewMemories && m.selectedDate != "":
		text = "🌵 " + m.bundle.T("emptyDay", map[string]string{"date": m.selectedDate})
	case m.view == journal.ViewMemories:
		text = "🌵 " + m.bundle.T("datePlaceholder", nil)
	default:
		text = "🍵 " + m.bundle.T("nothingHere", nil)
	}
	return emptyStyle.Width(maxInt(m.width-2, 20)).Render("\n" + text + "\n")
}

// buildDoodle renders the drawing surface placeholder. The terminal cannot
// host the canvas itself, so the view explains how to attach a finished
// drawing as an image file.
func (m *Model) buildDoodle() string {
	lines := []string{
		"",
		"🎨",
		m.bundle.T("doodleCaption", nil),
		"",
		m.bundle.T("doodleHint", nil),
	}
	return emptyStyle.
		Width(maxInt(m.width-2, 20)).
		Height(m.viewport.Height).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) buildInputBox() string {
	switch m.mode {
	case modeBrowse:
		return ""
	case modeCompose:
		return inputBoxStyle.Width(maxInt(m.width-2, 20)).Render(m.compose.View())
	default:
		return inputBoxStyle.Width(maxInt(m.width-2, 20)).Render(m.input.View())
	}
}

func (m *Model) buildFooter() string {
	if m.status != "" {
		if m.isError {
			return errorStyle.Render(m.status)
		}
		return statusStyle.Render(m.status)
	}
	if m.mode != modeBrowse {
		return helpStyle.Render(m.bundle.T("helpInput", nil))
	}
	return helpStyle.Render(m.bundle.T("helpBrowse", nil))
}

// layout resizes the controls for the current terminal size and input mode.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}

	chrome := 6 // header (2) + tabs (1) + section gaps (1) + footer (2)
	switch m.mode {
	case modeBrowse:
	case modeCompose:
		chrome += m.compose.Height() + 2
	default:
		chrome += 3
	}

	m.viewport.Width = m.width
	m.viewport.Height = maxInt(m.height-chrome, 3)
	m.compose.SetWidth(maxInt(m.width-6, 20))
	m.input.Width = maxInt(m.width-8, 20)
}

// refreshViewport re-renders the feed after any state change.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.buildFeed())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
