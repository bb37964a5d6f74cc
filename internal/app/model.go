package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/connorleisz/project-identity/internal/colors"
	"github.com/connorleisz/project-identity/internal/config"
	"github.com/connorleisz/project-identity/internal/host"
	"github.com/connorleisz/project-identity/internal/settings"
)

// Model is the prompt sequence implementing tea.Model
type Model struct {
	deps  Deps
	state State
	width int

	// Name step
	nameInput textinput.Model

	// Color step
	options     []colors.Option
	filter      string // Typed fuzzy filter over option names
	filtered    []int  // Indices into options, best match first
	colorCursor int    // Index into filtered

	// Custom hex step
	hexInput textinput.Model
	hexErr   error // Set when enter was pressed on an invalid code

	// Collected values
	name   string
	color  string
	root   string
	result *settings.Result
	err    error

	reloadErr error

	// Help overlay
	showingHelp bool
	helpContent string

	// Status message (transient feedback)
	statusMessage     string
	statusMessageTime time.Time
}

// NewModel creates the prompt model. The workspace is only resolved after
// every prompt has been answered.
func NewModel(deps Deps) Model {
	deps = deps.withDefaults()

	ni := textinput.New()
	ni.Prompt = "> "
	ni.Placeholder = "e.g., Frontend, Backend, AI"
	ni.CharLimit = 100
	ni.Width = 40
	ni.Focus()

	hi := textinput.New()
	hi.Prompt = "> "
	hi.Placeholder = "#2d5a87"
	hi.CharLimit = 7
	hi.Width = 10

	m := Model{
		deps:      deps,
		state:     StateAwaitName,
		nameInput: ni,
		options:   colors.Predefined(),
		hexInput:  hi,
	}
	m.applyFilter()
	m.colorCursor = m.initialColorCursor()
	return m
}

// initialColorCursor points at the last used color when it is a preset
func (m Model) initialColorCursor() int {
	last := m.deps.Config.LastColor
	if last == "" {
		return 0
	}
	for i, idx := range m.filtered {
		if m.options[idx].Value == last {
			return i
		}
	}
	return 0
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the current step
func (m Model) State() State {
	return m.state
}

// Outcome reports what the sequence ended with
func (m Model) Outcome() Outcome {
	return Outcome{
		State:     m.state,
		Name:      m.name,
		Color:     m.color,
		Root:      m.root,
		Result:    m.result,
		Err:       m.err,
		ReloadErr: m.reloadErr,
	}
}

// abort ends the sequence without touching the filesystem
func (m Model) abort() (Model, tea.Cmd) {
	m.deps.Logger.Debug("prompt cancelled", "state", m.state)
	m.state = StateAborted
	m.nameInput.Blur()
	m.hexInput.Blur()
	return m, tea.Quit
}

func (m Model) fail(err error) (Model, tea.Cmd) {
	m.deps.Logger.Error("set project identity failed", "error", err)
	m.state = StateFailed
	m.err = err
	return m, tea.Quit
}

// resolveWorkspace runs once every prompt is answered and either moves on
// to writing or fails without writing anything
func (m Model) resolveWorkspace() (Model, tea.Cmd) {
	m.state = StateAwaitWorkspace
	root, err := m.deps.Workspace()
	if err == nil {
		err = host.CheckWorkspace(root)
	}
	if err != nil {
		return m.fail(err)
	}
	m.root = root
	m.state = StateWriting
	return m, m.writeCmd()
}

// writeCmd performs the settings write asynchronously
func (m Model) writeCmd() tea.Cmd {
	writer := m.deps.Writer
	root, name, color := m.root, m.name, m.color
	return func() tea.Msg {
		res, err := writer.Write(root, name, color)
		return WriteCompleteMsg{Result: res, Err: err}
	}
}

// reloadCmd asks the editor to pick up the new settings
func (m Model) reloadCmd() tea.Cmd {
	reloader := m.deps.Reloader
	root := m.root
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()
		return ReloadCompleteMsg{Err: reloader.Reload(ctx, root)}
	}
}

// rememberColor stores the color for next time; failures only get logged.
// The saved file is reloaded first so overrides held in deps.Config for this
// run never become defaults.
func rememberColor(deps Deps, color string) {
	if deps.ConfigDir == "" {
		return
	}
	cfg := config.Load(deps.ConfigDir)
	cfg.LastColor = color
	if err := config.Save(deps.ConfigDir, cfg); err != nil {
		deps.Logger.Warn("could not save preferences", "dir", deps.ConfigDir, "error", err)
	}
}

// reloadNote explains the reload result to the user; empty means it worked
func reloadNote(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, host.ErrNoReloader):
		return "Reload your editor window to apply the new settings."
	default:
		return "Reload failed: " + err.Error()
	}
}
