package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mimijournal/mimi/pkg/imaging"
	"github.com/mimijournal/mimi/pkg/journal"
)

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Browse-mode keys drive intents on the app
// controller; input modes hand the keyboard to one control until the user
// confirms or cancels.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeBrowse {
			return m.updateBrowse(msg)
		}
		return m.updateInput(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		m.switchView(journal.ViewHome)
	case "2":
		m.switchView(journal.ViewSaved)
	case "3":
		m.switchView(journal.ViewMemories)
	case "4":
		m.switchView(journal.ViewDoodle)

	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
			m.commentCursor = -1
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.commentCursor = -1
		}

	case "l":
		if post, ok := m.selectedPost(); ok && m.commentCursor < len(post.Comments)-1 {
			m.commentCursor++
		}
	case "h":
		if m.commentCursor >= 0 {
			m.commentCursor--
		}

	case "n":
		if m.view != journal.ViewDoodle {
			m.mode = modeCompose
			m.compose.Reset()
			m.compose.Focus()
			m.layout()
		}

	case "a":
		if m.view == journal.ViewDoodle {
			m.startInput(modeDoodle, m.bundle.T("attachPrompt", nil))
		}

	case "c":
		if _, ok := m.selectedPost(); ok && m.view != journal.ViewDoodle {
			m.startInput(modeComment, m.bundle.T("commentPlaceholder", nil))
		}

	case "s":
		if post, ok := m.selectedPost(); ok {
			if err := m.app.ToggleSave(post.ID); err != nil {
				m.setError(err)
			}
		}

	case "x":
		if post, ok := m.selectedPost(); ok {
			if err := m.app.DeletePost(post.ID); err != nil {
				m.setError(err)
			} else {
				m.setStatus("postDeleted", nil)
			}
			m.clampCursor()
		}

	case "X":
		if post, ok := m.selectedPost(); ok && m.commentCursor >= 0 {
			comment := post.Comments[m.commentCursor]
			if err := m.app.DeleteComment(post.ID, comment.ID); err != nil {
				m.setError(err)
			}
			m.clampCommentCursor()
		}

	case "y":
		if post, ok := m.selectedPost(); ok {
			if err := clipboard.WriteAll(post.Content); err != nil {
				m.setError(err)
			} else {
				m.setStatus("copied", nil)
			}
		}

	case "/":
		m.startInput(modeSearch, m.bundle.T("searchPlaceholder", nil))
		m.input.SetValue(m.searchQuery)

	case "d":
		if m.view == journal.ViewMemories {
			m.startInput(modeDate, m.bundle.T("datePlaceholder", nil))
			m.input.SetValue(m.selectedDate)
		}

	case "p":
		m.startInput(modeProfileName, m.bundle.T("name", nil))
		m.input.SetValue(m.app.User().Name)

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.clampCursor()
		}
	}

	m.refreshViewport()
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelInput()
		m.refreshViewport()
		return m, nil
	case "enter":
		m.confirmInput()
		m.refreshViewport()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.mode == modeCompose {
		m.compose, cmd = m.compose.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// confirmInput applies the active input control's value.
func (m *Model) confirmInput() {
	switch m.mode {
	case modeCompose:
		m.pendingContent = m.compose.Value()
		m.compose.Blur()
		m.startInput(modeComposeFeeling, m.bundle.T("feelingPrompt", nil))

	case modeComposeFeeling:
		m.pendingFeeling = strings.TrimSpace(m.input.Value())
		m.startInput(modeComposeImage, m.bundle.T("attachPrompt", nil))

	case modeComposeImage:
		image, ok := m.resolveImage(m.input.Value(), false)
		if !ok {
			return // encode failed; leave the prompt up for correction
		}
		content := strings.TrimSpace(m.pendingContent)
		if m.pendingFeeling != "" {
			content = strings.TrimSpace(m.pendingFeeling + " " + content)
		}
		_, created, err := m.app.CreatePost(content, image)
		switch {
		case err != nil:
			m.setError(err)
		case !created:
			m.setStatus("writeHint", nil)
		default:
			m.setStatus("postCreated", nil)
			// Creating a post always lands back on the full feed.
			m.switchView(journal.ViewHome)
		}
		m.pendingContent = ""
		m.pendingFeeling = ""
		m.endInput()

	case modeDoodle:
		image, ok := m.resolveImage(m.input.Value(), true)
		if !ok {
			return
		}
		if _, _, err := m.app.CreatePost(m.bundle.T("doodleCaption", nil), image); err != nil {
			m.setError(err)
		} else {
			m.setStatus("postCreated", nil)
			m.switchView(journal.ViewHome)
		}
		m.endInput()

	case modeComment:
		if post, ok := m.selectedPost(); ok {
			if _, added, err := m.app.AddComment(post.ID, m.input.Value()); err != nil {
				m.setError(err)
			} else if added {
				m.setStatus("commentAdded", nil)
			}
		}
		m.endInput()

	case modeSearch:
		m.searchQuery = m.input.Value()
		m.clampCursor()
		m.endInput()

	case modeDate:
		value := m.input.Value()
		if value != "" {
			if _, err := time.ParseInLocation(journal.DayFormat, value, time.Local); err != nil {
				m.setError(err)
				return
			}
		}
		m.selectedDate = value
		m.clampCursor()
		m.endInput()

	case modeProfileName:
		name := m.input.Value()
		m.pendingName = name
		m.startInput(modeProfileAvatar, m.bundle.T("avatarPrompt", nil))

	case modeProfileAvatar:
		avatar := m.app.User().Avatar
		if path := m.input.Value(); path != "" {
			encoded, ok := m.resolveImage(path, true)
			if !ok {
				return
			}
			avatar = encoded
		}
		ok, err := m.app.UpdateProfile(m.pendingName, avatar)
		switch {
		case err != nil:
			m.setError(err)
		case !ok:
			m.setStatus("nameRequired", nil)
		}
		m.pendingName = ""
		m.endInput()
	}
}

// resolveImage turns an input value into a post-ready image string. An
// already-encoded data URI passes through; a file path is encoded. An empty
// value is allowed unless required.
func (m *Model) resolveImage(value string, required bool) (string, bool) {
	if value == "" {
		if required {
			m.setStatus("attachPrompt", nil)
			return "", false
		}
		return "", true
	}
	if imaging.IsDataURI(value) {
		return value, true
	}
	encoded, err := imaging.EncodeFile(value)
	if err != nil {
		m.setError(err)
		return "", false
	}
	return encoded, true
}

func (m *Model) startInput(mode inputMode, placeholder string) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Focus()
	m.layout()
}

func (m *Model) endInput() {
	m.input.Blur()
	m.mode = modeBrowse
	m.layout()
}

func (m *Model) cancelInput() {
	m.compose.Blur()
	m.pendingContent = ""
	m.pendingFeeling = ""
	m.pendingName = ""
	m.endInput()
}

func (m *Model) switchView(view journal.View) {
	m.view = view
	m.cursor = 0
	m.commentCursor = -1
}
