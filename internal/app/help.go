package app

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const helpMarkdown = `# Set Project Identity

Gives this workspace a **name** in the window title and a **color** for the
title bar, status bar and borders.

1. Enter a project name. The window title becomes ` + "`<name> - ${rootName}`" + `.
2. Pick a preset color, or *Custom Hex Code* to type one (` + "`#rgb`" + ` or ` + "`#rrggbb`" + `).
3. The settings are merged into ` + "`.vscode/settings.json`" + `. Other settings are kept.

A previous settings file is copied to ` + "`settings.json.backup.<ms>`" + ` first,
or to ` + "`settings.json.corrupted.<ms>`" + ` if it could not be read.

| Key | Action |
|-----|--------|
| enter | confirm |
| esc | cancel (nothing is written) |
| ↑/↓ | move in the color list |
| f1 | toggle this help |
| c / s | after saving, copy the color / the settings JSON |
`

// renderHelp renders the help text as markdown, falling back to wrapped
// plain text when the renderer is unavailable
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		rendered, err := renderer.Render(helpMarkdown)
		if err == nil {
			return rendered
		}
	}
	return wordwrap.String(helpMarkdown, width)
}
