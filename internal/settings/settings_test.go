package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantLenient bool
		wantLen     int
	}{
		{name: "object", input: `{"a": 1, "b": {"c": "d"}}`, wantLen: 2},
		{name: "empty object", input: `{}`, wantLen: 0},
		{name: "null", input: `null`, wantLen: 0},
		{name: "empty file", input: ``, wantErr: true},
		{name: "truncated", input: `{"a": `, wantErr: true},
		{name: "array", input: `[1, 2]`, wantErr: true},
		{name: "string", input: `"hello"`, wantErr: true},
		{name: "two values", input: `{} {}`, wantErr: true},
		{name: "bare comma", input: `{,}`, wantErr: true, wantLenient: true},
		{name: "trailing comma", input: `{"a": 1,}`, wantErr: true, wantLenient: true},
		{name: "comments", input: "{\n// x\n\"a\": 1 /* y */}", wantErr: true, wantLenient: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.wantLenient, perr.Lenient)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestParseReplacesInvalidUTF8(t *testing.T) {
	got, err := Parse([]byte("{\"a\": \"\xff\"}"))
	require.NoError(t, err)
	assert.Equal(t, "\ufffd", got["a"])
}

func TestIdentity(t *testing.T) {
	id := Identity("TestProject", "#ff0000")
	require.Len(t, id, 2)
	assert.Equal(t, "TestProject - ${rootName}", id[TitleKey])

	colors, ok := id[ColorsKey].(map[string]any)
	require.True(t, ok)
	require.Len(t, colors, len(ColorKeys))
	for _, k := range ColorKeys {
		assert.Contains(t, colors, k)
	}
	assert.Equal(t, "#ff0000", colors["titleBar.activeBackground"])
	assert.Equal(t, "#ff0000", colors["statusBar.background"])
	assert.Equal(t, "#ff0000", colors["activityBar.border"])
}

func TestMergeIsShallow(t *testing.T) {
	base := Settings{
		"editor.fontSize": 14,
		ColorsKey:         map[string]any{"editor.background": "#000"},
	}
	merged := Merge(base, Identity("X", "#abc"))

	assert.Equal(t, 14, merged["editor.fontSize"])
	assert.NotContains(t, merged[ColorsKey], "editor.background")
	// base is untouched
	assert.Contains(t, base[ColorsKey], "editor.background")
	assert.NotContains(t, base, TitleKey)
}

func TestEncodeNil(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestBackupKindString(t *testing.T) {
	assert.Equal(t, "backup", BackupOrdinary.String())
	assert.Equal(t, "corrupted", BackupCorrupted.String())
	assert.Equal(t, "none", BackupNone.String())
}
