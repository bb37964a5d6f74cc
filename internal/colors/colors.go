package colors

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// CustomValue is the catalog value that asks for a free-form hex code
const CustomValue = "custom"

// ValidationError is shown when a custom hex code is rejected
const ValidationError = "Please enter a valid hex color code (e.g., #2d5a87)"

// ErrInvalidHex carries ValidationError for callers that need an error value
var ErrInvalidHex = errors.New(ValidationError)

var hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// Option is one entry of the color picker
type Option struct {
	Label string // Display name, prefixed with an emoji glyph
	Value string // Hex code, or CustomValue
}

// IsCustom reports whether picking this option requires a custom hex code
func (o Option) IsCustom() bool {
	return o.Value == CustomValue
}

// Name returns the label without its leading glyph ("🔵 Blue" -> "Blue")
func (o Option) Name() string {
	if _, rest, ok := strings.Cut(o.Label, " "); ok {
		return rest
	}
	return o.Label
}

var predefined = []Option{
	{Label: "🔵 Blue", Value: "#36558f"},
	{Label: "🔴 Red", Value: "#7d4a4a"},
	{Label: "🟢 Green", Value: "#4a6b4a"},
	{Label: "🟣 Purple", Value: "#553366"},
	{Label: "🟠 Orange", Value: "#8b6f47"},
	{Label: "🟡 Yellow", Value: "#8b8b3a"},
	{Label: "⚫ Dark Gray", Value: "#3d3d3d"},
	{Label: "⚪ Light Gray", Value: "#5a5a5a"},
	{Label: "🟤 Brown", Value: "#6B4F3A"},
	{Label: "✏️ Custom Hex Code", Value: CustomValue},
}

// Predefined returns the ordered preset catalog. The last entry is the
// custom sentinel. The returned slice is a copy.
func Predefined() []Option {
	out := make([]Option, len(predefined))
	copy(out, predefined)
	return out
}

// IsValidHex reports whether s is "#" followed by exactly 3 or 6 hex digits
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Validate returns ErrInvalidHex unless s is a valid hex color.
// Its signature matches textinput.ValidateFunc.
func Validate(s string) error {
	if !IsValidHex(s) {
		return ErrInvalidHex
	}
	return nil
}

// FindPreset resolves a preset by its name ("blue", "Dark Gray") or by its
// exact hex value. The custom sentinel never resolves.
func FindPreset(query string) (Option, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Option{}, false
	}
	for _, o := range predefined {
		if o.IsCustom() {
			continue
		}
		if strings.EqualFold(o.Name(), q) || strings.EqualFold(o.Value, q) {
			return o, true
		}
		// Accept "dark-gray" / "dark_gray" style spellings from the command line
		alt := strings.NewReplacer("-", " ", "_", " ").Replace(q)
		if strings.EqualFold(o.Name(), alt) {
			return o, true
		}
	}
	return Option{}, false
}

// Contrast picks black or white text for legibility on top of hex.
// Invalid input falls back to white.
func Contrast(hex string) string {
	c, err := colorful.Hex(expand(hex))
	if err != nil {
		return "#ffffff"
	}
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > 0.179 {
		return "#000000"
	}
	return "#ffffff"
}

// expand turns "#abc" into "#aabbcc"
func expand(hex string) string {
	if len(hex) != 4 || !IsValidHex(hex) {
		return hex
	}
	var sb strings.Builder
	sb.WriteByte('#')
	for i := 1; i < 4; i++ {
		sb.WriteByte(hex[i])
		sb.WriteByte(hex[i])
	}
	return sb.String()
}
