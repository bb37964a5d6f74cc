package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidHexAcceptsShortAndLongForms(t *testing.T) {
	for _, s := range []string{"#36558f", "#fff", "#000000", "#FFFFFF", "#6B4F3A", "#aBc"} {
		assert.True(t, IsValidHex(s), "expected %q to be valid", s)
	}
}

func TestIsValidHexRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"#",
		"#12345",
		"#1234567",
		"#ff",
		"36558f",
		"fff",
		"#GGGGGG",
		"#12345g",
		" #fff",
		"#fff ",
		"##fff",
		"#ffff",
	} {
		assert.False(t, IsValidHex(s), "expected %q to be invalid", s)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("#2d5a87"))

	err := Validate("2d5a87")
	require.ErrorIs(t, err, ErrInvalidHex)
	assert.Equal(t, ValidationError, err.Error())
}

func TestPredefinedCatalog(t *testing.T) {
	catalog := Predefined()
	require.Len(t, catalog, 10)

	valid := 0
	for _, o := range catalog {
		assert.NotEmpty(t, o.Label)
		assert.NotEmpty(t, o.Value)
		if IsValidHex(o.Value) {
			valid++
		}
	}
	assert.Equal(t, 9, valid)

	last := catalog[len(catalog)-1]
	assert.True(t, last.IsCustom())
	assert.Equal(t, CustomValue, last.Value)
	assert.Equal(t, "🔵 Blue", catalog[0].Label)
	assert.Equal(t, "🟤 Brown", catalog[8].Label)
}

func TestPredefinedReturnsCopy(t *testing.T) {
	catalog := Predefined()
	catalog[0].Value = "#000"
	assert.Equal(t, "#36558f", Predefined()[0].Value)
}

func TestOptionName(t *testing.T) {
	assert.Equal(t, "Dark Gray", Option{Label: "⚫ Dark Gray"}.Name())
	assert.Equal(t, "Plain", Option{Label: "Plain"}.Name())
}

func TestFindPreset(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"blue", "#36558f", true},
		{"BLUE", "#36558f", true},
		{"Dark Gray", "#3d3d3d", true},
		{"dark-gray", "#3d3d3d", true},
		{"light_gray", "#5a5a5a", true},
		{"#6b4f3a", "#6B4F3A", true},
		{"  green ", "#4a6b4a", true},
		{"custom", "", false},
		{"Custom Hex Code", "", false},
		{"magenta", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			o, ok := FindPreset(tt.query)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, o.Value)
		})
	}
}

func TestContrast(t *testing.T) {
	assert.Equal(t, "#000000", Contrast("#ffffff"))
	assert.Equal(t, "#000000", Contrast("#ff0"))
	assert.Equal(t, "#ffffff", Contrast("#36558f"))
	assert.Equal(t, "#ffffff", Contrast("#000"))
	assert.Equal(t, "#ffffff", Contrast("not-a-color"))
}
