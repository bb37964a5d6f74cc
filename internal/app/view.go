package app

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/connorleisz/project-identity/internal/colors"
	"github.com/connorleisz/project-identity/internal/settings"
	"github.com/connorleisz/project-identity/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// View implements tea.Model
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Set Project Identity"))
	sb.WriteString("\n\n")

	switch m.state {
	case StateAwaitName:
		sb.WriteString(styles.Prompt.Render("Enter a project name"))
		sb.WriteString("\n")
		sb.WriteString(m.nameInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.renderKeys("enter confirm", "esc cancel", "f1 help"))

	case StateAwaitColor:
		sb.WriteString(styles.Prompt.Render("Select a color for the title bar"))
		if m.filter != "" {
			sb.WriteString(styles.Faint.Render("  filter: ") + m.filter)
		}
		sb.WriteString("\n")
		sb.WriteString(m.renderColorList())
		sb.WriteString("\n")
		sb.WriteString(m.renderKeys("↑/↓ move", "type to filter", "enter select", "esc cancel", "f1 help"))

	case StateAwaitCustomHex:
		sb.WriteString(styles.Prompt.Render("Enter a hex color code for the title bar"))
		sb.WriteString("\n")
		sb.WriteString(m.hexInput.View())
		value := m.hexInput.Value()
		if colors.IsValidHex(value) {
			sb.WriteString("  " + styles.Swatch(value, "      "))
		} else if value != "" || m.hexErr != nil {
			sb.WriteString("\n")
			sb.WriteString(styles.StatusError.Render(colors.ValidationError))
		}
		sb.WriteString("\n\n")
		sb.WriteString(m.renderKeys("enter confirm", "esc cancel", "f1 help"))

	case StateAwaitWorkspace, StateWriting:
		sb.WriteString(styles.StatusWarning.Render("Writing workspace settings..."))

	case StateReloading:
		sb.WriteString(styles.StatusWarning.Render("Reloading editor..."))

	case StateDone:
		sb.WriteString(m.renderSummary())

	case StateAborted:
		sb.WriteString(styles.Faint.Render("Cancelled. Nothing was written."))

	case StateFailed:
		sb.WriteString(styles.StatusError.Render("Error: " + Message(m.err)))
	}

	if m.statusMessage != "" && time.Since(m.statusMessageTime) < 5*time.Second {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusSuccess.Render(m.statusMessage))
	}

	if m.showingHelp && m.state.Awaiting() {
		sb.WriteString("\n")
		sb.WriteString(styles.Panel(m.width - 2).Render(strings.TrimRight(m.helpContent, "\n")))
	}

	sb.WriteString("\n")
	return sb.String()
}

// renderColorList draws the filtered presets with swatches
func (m Model) renderColorList() string {
	if len(m.filtered) == 0 {
		return styles.Faint.Render("  no colors match")
	}
	var lines []string
	for i, idx := range m.filtered {
		opt := m.options[idx]
		cursor := "  "
		label := opt.Label
		if i == m.colorCursor {
			cursor = styles.Title.Render("> ")
			label = styles.Selected.Render(label)
		}
		line := cursor + label
		if !opt.IsCustom() {
			line += " " + styles.Swatch(opt.Value, "    ")
			// Downsampled terminals can make neighbouring presets look alike
			if !m.deps.Caps.TrueColor {
				line += " " + styles.Faint.Render(opt.Value)
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderKeys(keys ...string) string {
	var parts []string
	for _, k := range keys {
		key, desc, _ := strings.Cut(k, " ")
		parts = append(parts, styles.Key.Render(key)+" "+styles.Faint.Render(desc))
	}
	return strings.Join(parts, "  ")
}

// renderSummary shows what was written and where the old file went
func (m Model) renderSummary() string {
	var sb strings.Builder
	width := m.width
	if width <= 0 {
		width = 80
	}

	title := m.name + " - " + settings.RootNamePlaceholder
	sb.WriteString(styles.TitleBarPreview(m.color, title, min(width, 60)))
	sb.WriteString("\n\n")

	if m.result != nil {
		sb.WriteString(styles.StatusSuccess.Render("✓ Saved " + m.result.SettingsPath))
		sb.WriteString("\n")
		switch m.result.Backup {
		case settings.BackupOrdinary:
			sb.WriteString(styles.Muted.Render("  previous settings kept in " + m.result.BackupPath))
			sb.WriteString("\n")
		case settings.BackupCorrupted:
			note := fmt.Sprintf("  previous settings were not valid JSON (%s); the original is in %s",
				Message(m.result.ParseErr), m.result.BackupPath)
			sb.WriteString(styles.StatusWarning.Render(wordwrap.String(note, width)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(HighlightJSON(settings.Identity(m.name, m.color)))
	sb.WriteString("\n")

	if note := reloadNote(m.reloadErr); note != "" {
		sb.WriteString(styles.StatusWarning.Render(wordwrap.String(note, width)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderKeys("c copy color", "s copy settings", "any other key exits"))
	return sb.String()
}

// HighlightJSON renders settings as colored, indented JSON. Highlighting
// failures fall back to plain text.
func HighlightJSON(s settings.Settings) string {
	data, err := settings.Encode(s)
	if err != nil {
		return ""
	}
	code := strings.TrimRight(string(data), "\n")

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, code, "json", "terminal256", "monokai"); err != nil {
		return code
	}
	return buf.String()
}
