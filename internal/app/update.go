package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/connorleisz/project-identity/internal/clipboard"
	"github.com/connorleisz/project-identity/internal/colors"
	"github.com/connorleisz/project-identity/internal/settings"
	"github.com/sahilm/fuzzy"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.showingHelp {
			m.helpContent = renderHelp(m.width)
		}
		return m, nil

	case WriteCompleteMsg:
		if m.state != StateWriting {
			return m, nil
		}
		if msg.Err != nil {
			return m.fail(msg.Err)
		}
		m.result = msg.Result
		rememberColor(m.deps, m.color)
		m.state = StateReloading
		return m, m.reloadCmd()

	case ReloadCompleteMsg:
		if m.state != StateReloading {
			return m, nil
		}
		m.reloadErr = msg.Err
		if msg.Err != nil {
			m.deps.Logger.Warn("reload did not run", "error", msg.Err)
		}
		m.state = StateDone
		return m, nil

	case ClearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input-internal messages
	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The write is already under way; let it finish
	if m.state == StateWriting || m.state == StateReloading {
		return m, nil
	}

	if m.state == StateDone {
		switch msg.String() {
		case "c":
			return m.copyToClipboard(m.color, "Copied "+m.color)
		case "s":
			// Same highlighted block the summary shows, minus the styling
			return m.copyToClipboard(HighlightJSON(settings.Identity(m.name, m.color)), "Copied settings")
		}
		return m, tea.Quit
	}

	if m.state.Terminal() {
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+c":
		return m.abort()
	case "f1":
		m.showingHelp = !m.showingHelp
		if m.showingHelp {
			m.helpContent = renderHelp(m.width)
		}
		return m, nil
	}

	switch m.state {
	case StateAwaitName:
		return m.updateName(msg)
	case StateAwaitColor:
		return m.updateColor(msg)
	case StateAwaitCustomHex:
		return m.updateCustomHex(msg)
	}
	return m, nil
}

func (m Model) copyToClipboard(text, success string) (tea.Model, tea.Cmd) {
	if err := clipboard.CopyPlain(m.deps.Clipboard, text); err != nil {
		m.statusMessage = err.Error()
	} else {
		m.statusMessage = success
	}
	m.statusMessageTime = time.Now()
	return m, ClearStatusAfter(3 * time.Second)
}

// updateName handles the project name prompt
func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.abort()
	case "enter":
		name := m.nameInput.Value()
		if strings.TrimSpace(name) == "" {
			return m.abort()
		}
		m.name = name
		m.nameInput.Blur()
		m.state = StateAwaitColor
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// updateColor handles the preset picker. Typing filters the list.
func (m Model) updateColor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.applyFilter()
			return m, nil
		}
		return m.abort()

	case "up", "ctrl+p", "shift+tab":
		if m.colorCursor > 0 {
			m.colorCursor--
		}
		return m, nil

	case "down", "ctrl+n", "tab":
		if m.colorCursor < len(m.filtered)-1 {
			m.colorCursor++
		}
		return m, nil

	case "home":
		m.colorCursor = 0
		return m, nil

	case "end":
		if len(m.filtered) > 0 {
			m.colorCursor = len(m.filtered) - 1
		}
		return m, nil

	case "backspace":
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
		return m, nil

	case "enter":
		opt, ok := m.selectedOption()
		if !ok {
			return m, nil
		}
		if opt.IsCustom() {
			m.state = StateAwaitCustomHex
			cmd := m.hexInput.Focus()
			return m, cmd
		}
		m.color = opt.Value
		return m.resolveWorkspace()
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
	case tea.KeySpace:
		m.filter += " "
		m.applyFilter()
	}
	return m, nil
}

// updateCustomHex handles the free-form hex prompt
func (m Model) updateCustomHex(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.abort()
	case "enter":
		value := m.hexInput.Value()
		if value == "" {
			return m.abort()
		}
		if err := colors.Validate(value); err != nil {
			m.hexErr = err
			return m, nil
		}
		m.color = value
		m.hexInput.Blur()
		return m.resolveWorkspace()
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.hexErr = nil // Clear error on typing
	return m, cmd
}

// updateInputs forwards non-key messages to the focused input
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateAwaitName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case StateAwaitCustomHex:
		m.hexInput, cmd = m.hexInput.Update(msg)
	}
	return m, cmd
}

// applyFilter recomputes the visible options for the current filter
func (m *Model) applyFilter() {
	m.colorCursor = 0
	m.filtered = nil
	if m.filter == "" {
		for i := range m.options {
			m.filtered = append(m.filtered, i)
		}
		return
	}

	names := make([]string, len(m.options))
	for i, o := range m.options {
		names[i] = o.Name()
	}
	for _, match := range fuzzy.Find(m.filter, names) {
		m.filtered = append(m.filtered, match.Index)
	}
}

func (m Model) selectedOption() (colors.Option, bool) {
	if m.colorCursor < 0 || m.colorCursor >= len(m.filtered) {
		return colors.Option{}, false
	}
	return m.options[m.filtered[m.colorCursor]], true
}
