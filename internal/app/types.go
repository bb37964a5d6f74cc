package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/connorleisz/project-identity/internal/clipboard"
	"github.com/connorleisz/project-identity/internal/config"
	"github.com/connorleisz/project-identity/internal/host"
	"github.com/connorleisz/project-identity/internal/settings"
	"github.com/connorleisz/project-identity/internal/terminal"
	"github.com/hashicorp/go-hclog"
)

// State is a step of the prompt sequence
type State int

const (
	StateAwaitName State = iota
	StateAwaitColor
	StateAwaitCustomHex
	StateAwaitWorkspace
	StateWriting
	StateReloading
	StateDone
	StateAborted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAwaitName:
		return "await-name"
	case StateAwaitColor:
		return "await-color"
	case StateAwaitCustomHex:
		return "await-custom-hex"
	case StateAwaitWorkspace:
		return "await-workspace"
	case StateWriting:
		return "writing"
	case StateReloading:
		return "reloading"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Awaiting reports whether the state is waiting on user input and may
// therefore be cancelled without side effects
func (s State) Awaiting() bool {
	return s == StateAwaitName || s == StateAwaitColor || s == StateAwaitCustomHex
}

// Terminal reports whether no further transitions happen
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted || s == StateFailed
}

// SettingsWriter performs the read-merge-backup-write of workspace settings
type SettingsWriter interface {
	Write(root, projectName, color string) (*settings.Result, error)
}

// Deps are the collaborators shared by the interactive and flag-driven paths
type Deps struct {
	Workspace func() (string, error) // Resolves the workspace root when it is needed
	Writer    SettingsWriter
	Reloader  host.Reloader
	Logger    hclog.Logger
	Clipboard clipboard.Writer
	Config    config.Config // Effective settings for this run, flag overrides included
	ConfigDir string        // Where preferences are persisted; empty disables saving
	Caps      terminal.Capabilities
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = hclog.NewNullLogger()
	}
	if d.Workspace == nil {
		d.Workspace = func() (string, error) { return "", host.ErrNoWorkspace }
	}
	if d.Writer == nil {
		d.Writer = settings.NewWriter(d.Config.SettingsDir, d.Logger)
	}
	if d.Reloader == nil {
		d.Reloader = host.CommandReloader{Command: d.Config.ReloadCommand}
	}
	if d.Clipboard == nil {
		d.Clipboard = clipboard.System
	}
	return d
}

// Outcome is the final state of a run
type Outcome struct {
	State     State
	Name      string
	Color     string
	Root      string
	Result    *settings.Result
	Err       error // Set when State is StateFailed
	ReloadErr error // Reload problems never undo a successful write
}

// reloadTimeout bounds the external reload command
const reloadTimeout = 30 * time.Second

// WriteCompleteMsg is sent when the settings write finishes
type WriteCompleteMsg struct {
	Result *settings.Result
	Err    error
}

// ReloadCompleteMsg is sent when the reload action finishes
type ReloadCompleteMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message after delay
type ClearStatusMsg struct{}

// ClearStatusAfter returns a command that clears the status message after a delay
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
