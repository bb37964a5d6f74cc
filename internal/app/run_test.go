package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/connorleisz/project-identity/internal/colors"
	"github.com/connorleisz/project-identity/internal/config"
	"github.com/connorleisz/project-identity/internal/host"
	"github.com/connorleisz/project-identity/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"blue", "#36558f"},
		{"Dark Gray", "#3d3d3d"},
		{"light-gray", "#5a5a5a"},
		{"#7d4a4a", "#7d4a4a"},
		{"#abc", "#abc"},
		{" #A1B2C3 ", "#A1B2C3"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "custom", "teal", "#12", "123456", "#gggggg"} {
		_, err := ResolveColor(bad)
		assert.ErrorIs(t, err, colors.ErrInvalidHex, bad)
	}
}

func TestRunWritesAndReloads(t *testing.T) {
	root := t.TempDir()
	configDir := t.TempDir()
	deps, reloader := testDeps(root)
	deps.ConfigDir = configDir

	out, err := Run(context.Background(), Request{Name: "  Backend  ", Color: "green"}, deps)
	require.NoError(t, err)
	assert.Equal(t, StateDone, out.State)
	assert.Equal(t, "  Backend  ", out.Name)
	assert.Equal(t, "#4a6b4a", out.Color)
	assert.Equal(t, []string{root}, reloader.calls)
	assert.Equal(t, "#4a6b4a", config.Load(configDir).LastColor)

	data, err := os.ReadFile(out.Result.SettingsPath)
	require.NoError(t, err)
	s, err := settings.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "  Backend   - ${rootName}", s[settings.TitleKey])
}

func TestRunRejectsInputWithoutWriting(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"empty name", Request{Name: "", Color: "blue"}, ErrEmptyName},
		{"blank name", Request{Name: "  ", Color: "blue"}, ErrEmptyName},
		{"bad color", Request{Name: "X", Color: "#12345"}, colors.ErrInvalidHex},
		{"custom sentinel", Request{Name: "X", Color: "custom"}, colors.ErrInvalidHex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			deps, reloader := testDeps(root)

			out, err := Run(context.Background(), tt.req, deps)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, StateFailed, out.State)
			assertUntouched(t, root, reloader)
		})
	}
}

func TestRunMissingWorkspace(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	deps, reloader := testDeps(root)

	out, err := Run(context.Background(), Request{Name: "X", Color: "blue"}, deps)
	assert.ErrorIs(t, err, host.ErrNoWorkspace)
	assert.Equal(t, StateFailed, out.State)
	assertUntouched(t, root, reloader)
}

func TestRunWithoutWorkspaceResolver(t *testing.T) {
	_, err := Run(context.Background(), Request{Name: "X", Color: "blue"}, Deps{})
	assert.ErrorIs(t, err, host.ErrNoWorkspace)
}

func TestRunReloadFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	deps, _ := testDeps(root)
	deps.Reloader = host.ReloaderFunc(func(context.Context, string) error {
		return errors.New("no editor")
	})

	out, err := Run(context.Background(), Request{Name: "X", Color: "#123"}, deps)
	require.NoError(t, err)
	assert.Equal(t, StateDone, out.State)
	assert.EqualError(t, out.ReloadErr, "no editor")
	assert.FileExists(t, out.Result.SettingsPath)
}

func TestRunWriteFailure(t *testing.T) {
	root := t.TempDir()
	deps, reloader := testDeps(root)
	boom := errors.New("read-only")
	deps.Writer = failingWriter{err: boom}

	out, err := Run(context.Background(), Request{Name: "X", Color: "blue"}, deps)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateFailed, out.State)
	assert.Empty(t, reloader.calls)
}

func TestReloadNote(t *testing.T) {
	assert.Empty(t, reloadNote(nil))
	assert.Contains(t, reloadNote(host.ErrNoReloader), "Reload your editor window")
	assert.Equal(t, "Reload failed: boom", reloadNote(errors.New("boom")))
}

func TestHighlightJSONKeepsContent(t *testing.T) {
	out := HighlightJSON(settings.Identity("Docs", "#3d3d3d"))
	assert.Contains(t, out, "window.title")
	assert.Contains(t, out, "#3d3d3d")
}
