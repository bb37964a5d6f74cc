// Package settings merges a project identity into a workspace's editor
// settings file, keeping a timestamped copy of whatever was there before.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

const (
	// DefaultDir is the per-workspace configuration directory
	DefaultDir = ".vscode"
	// FileName is the settings file inside DefaultDir
	FileName = "settings.json"

	TitleKey  = "window.title"
	ColorsKey = "workbench.colorCustomizations"

	// RootNamePlaceholder is substituted by the editor, never by us
	RootNamePlaceholder = "${rootName}"

	ActiveForeground   = "#ffffff"
	InactiveForeground = "#cccccc"
)

// ColorKeys lists the color customizations owned by this tool, in display order
var ColorKeys = []string{
	"titleBar.activeBackground",
	"titleBar.activeForeground",
	"titleBar.inactiveBackground",
	"titleBar.inactiveForeground",
	"statusBar.background",
	"statusBar.foreground",
	"activityBar.border",
	"sideBar.border",
}

// Settings is the decoded top-level object of a settings file
type Settings map[string]any

// ParseError reports a settings file that could not be decoded as a JSON object
type ParseError struct {
	Err error
	// Lenient is set when the file only decodes once comments and trailing
	// commas are stripped. Such a file is still treated as corrupted.
	Lenient bool
}

func (e *ParseError) Error() string {
	if e.Lenient {
		return "invalid settings file (comments or trailing commas): " + e.Err.Error()
	}
	return "invalid settings file: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a settings file as strict JSON. A literal null decodes to an
// empty object; anything else that is not an object is a *ParseError.
func Parse(data []byte) (Settings, error) {
	s, err := decodeObject(data)
	if err != nil {
		perr := &ParseError{Err: err}
		if _, lerr := decodeObject(jsonc.ToJSON(data)); lerr == nil {
			perr.Lenient = true
		}
		return nil, perr
	}
	return s, nil
}

func decodeObject(data []byte) (Settings, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	switch obj := v.(type) {
	case nil:
		return Settings{}, nil
	case map[string]any:
		return Settings(obj), nil
	default:
		return nil, fmt.Errorf("top-level value is %T, want object", v)
	}
}

// Identity builds the two keys this tool owns for the given project and color
func Identity(projectName, color string) Settings {
	return Settings{
		TitleKey: projectName + " - " + RootNamePlaceholder,
		ColorsKey: map[string]any{
			"titleBar.activeBackground":   color,
			"titleBar.activeForeground":   ActiveForeground,
			"titleBar.inactiveBackground": color,
			"titleBar.inactiveForeground": InactiveForeground,
			"statusBar.background":        color,
			"statusBar.foreground":        ActiveForeground,
			"activityBar.border":          color,
			"sideBar.border":              color,
		},
	}
}

// Merge returns base overlaid with update. Colliding keys take update's
// value whole; nested objects are not merged.
func Merge(base, update Settings) Settings {
	out := make(Settings, len(base)+len(update))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

// Encode renders settings with 4-space indentation and a trailing newline
func Encode(s Settings) ([]byte, error) {
	if s == nil {
		s = Settings{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
