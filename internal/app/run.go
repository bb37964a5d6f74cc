package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/connorleisz/project-identity/internal/colors"
	"github.com/connorleisz/project-identity/internal/host"
)

// ErrEmptyName is returned when no project name was given
var ErrEmptyName = errors.New("project name is empty")

// Request carries answers supplied up front instead of through prompts
type Request struct {
	Name  string
	Color string // Preset name, preset hex, or any valid hex code
}

// ResolveColor turns a preset name or a hex code into a hex code
func ResolveColor(input string) (string, error) {
	if opt, ok := colors.FindPreset(input); ok {
		return opt.Value, nil
	}
	value := strings.TrimSpace(input)
	if err := colors.Validate(value); err != nil {
		return "", fmt.Errorf("color %q: %w", input, err)
	}
	return value, nil
}

// Run performs the same sequence as the prompts without a terminal:
// validate, check the workspace, write, reload. Input errors and a missing
// workspace leave the filesystem untouched.
func Run(ctx context.Context, req Request, deps Deps) (Outcome, error) {
	deps = deps.withDefaults()
	log := deps.Logger

	out := Outcome{State: StateAwaitName}
	name := req.Name
	if strings.TrimSpace(name) == "" {
		return fail(out, ErrEmptyName)
	}
	out.Name = name

	out.State = StateAwaitColor
	color, err := ResolveColor(req.Color)
	if err != nil {
		return fail(out, err)
	}
	out.Color = color

	out.State = StateAwaitWorkspace
	root, err := deps.Workspace()
	if err == nil {
		err = host.CheckWorkspace(root)
	}
	if err != nil {
		return fail(out, err)
	}
	out.Root = root

	out.State = StateWriting
	res, err := deps.Writer.Write(root, name, color)
	if err != nil {
		return fail(out, err)
	}
	out.Result = res
	rememberColor(deps, color)

	out.State = StateReloading
	rctx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()
	if err := deps.Reloader.Reload(rctx, root); err != nil {
		log.Warn("reload did not run", "error", err)
		out.ReloadErr = err
	}

	out.State = StateDone
	return out, nil
}

// Message renders err as the sentence shown to the user
func Message(err error) string {
	switch {
	case err == nil:
		return "unknown error"
	case errors.Is(err, host.ErrNoWorkspace):
		return "No workspace folder open."
	default:
		return err.Error()
	}
}

func fail(out Outcome, err error) (Outcome, error) {
	out.State = StateFailed
	out.Err = err
	return out, err
}
