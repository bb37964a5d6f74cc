// Package host stands in for the editor around the tool: it locates the
// workspace and asks the editor to reload once settings change.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrNoWorkspace means there is no usable workspace root
	ErrNoWorkspace = errors.New("no workspace folder open")
	// ErrNoReloader means no reload command is configured
	ErrNoReloader = errors.New("no reload command configured")
)

// Reloader asks the editor to pick up new workspace settings
type Reloader interface {
	Reload(ctx context.Context, root string) error
}

// ReloaderFunc adapts a function to Reloader
type ReloaderFunc func(ctx context.Context, root string) error

func (f ReloaderFunc) Reload(ctx context.Context, root string) error {
	return f(ctx, root)
}

// CommandReloader runs a command line in the workspace root, e.g.
// "code --reuse-window ."
type CommandReloader struct {
	Command string
}

// Reload runs the configured command. An empty command returns ErrNoReloader.
func (r CommandReloader) Reload(ctx context.Context, root string) error {
	fields := strings.Fields(r.Command)
	if len(fields) == 0 {
		return ErrNoReloader
	}
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = root
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg != "" {
			return fmt.Errorf("reload command %q: %w: %s", fields[0], err, msg)
		}
		return fmt.Errorf("reload command %q: %w", fields[0], err)
	}
	return nil
}

// ResolveWorkspace turns path into an absolute workspace root. With
// useGitRoot, a path inside a git repository resolves to the repository's
// top level. Missing paths and non-directories yield ErrNoWorkspace.
func ResolveWorkspace(path string, useGitRoot bool) (string, error) {
	if path == "" {
		return "", ErrNoWorkspace
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
	}
	if err := CheckWorkspace(absPath); err != nil {
		return "", err
	}
	if useGitRoot {
		if isRepo, top := GitRoot(absPath); isRepo {
			return top, nil
		}
	}
	return absPath, nil
}

// CheckWorkspace reports ErrNoWorkspace unless root is an existing directory
func CheckWorkspace(root string) error {
	if root == "" {
		return ErrNoWorkspace
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoWorkspace, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNoWorkspace, root)
	}
	return nil
}

// GitRoot checks if the path is inside a git repository
// Returns (isRepo, repoRoot)
func GitRoot(path string) (bool, string) {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return false, ""
	}
	return true, filepath.Clean(strings.TrimSpace(string(output)))
}
