// Package theme implements the editor's color theme table: named sets of
// RGB colors for every semantic role the renderer paints.
//
// Grounded on original_source/editor.c's ColorType/ColorTheme enums and
// its `themes[]` table; table contents are carried as data (YAML, loaded
// via gopkg.in/yaml.v3) rather than hardcoded per spec.md Non-goal (iii),
// with the two named themes recovered from the original seeded as
// defaults. ColorThemeLight was declared in the original enum but never
// populated — that gap is preserved here (see DESIGN.md).
package theme

import (
	"os"
	"strconv"
	"strings"

	"github.com/garaekz/ved/color"
	"gopkg.in/yaml.v3"
)

// Role identifies one semantic color slot a theme assigns an RGB value to.
type Role int

const (
	RoleEditorCursor Role = iota
	RoleEditorForeground
	RoleEditorBackground
	RoleMinibarCursor
	RoleMinibarForeground
	RoleMinibarBackground
	RoleMinibarError
	RoleSelectedMatchForeground
	RoleSelectedMatchBackground
	RoleMatchForeground
	RoleMatchBackground
	RoleComment
	RoleMultilineComment
	RoleKeyword
	RoleString
	RoleChar
	RoleNumber
	roleCount
)

// RGB is a 24-bit truecolor value, rendered by the terminal driver via
// CSI 38;2;R;G;Bm / CSI 48;2;R;G;Bm.
type RGB struct {
	R, G, B uint8
}

// Color converts rgb into the teacher's color.Color, so the renderer can
// reuse its existing SGR-emission helpers for theme-driven output.
func (c RGB) Color() color.Color {
	return color.RGB(c.R, c.G, c.B)
}

type themeFile struct {
	Name   string         `yaml:"name"`
	Colors map[string]int `yaml:"colors"` // 0xRRGGBB, keyed by role name
}

// Theme is one named, fully- or partially-populated color set.
type Theme struct {
	Name   string
	colors [roleCount]RGB
	set    [roleCount]bool
}

var roleNames = map[string]Role{
	"editor_cursor":             RoleEditorCursor,
	"editor_foreground":         RoleEditorForeground,
	"editor_background":         RoleEditorBackground,
	"minibar_cursor":            RoleMinibarCursor,
	"minibar_foreground":        RoleMinibarForeground,
	"minibar_background":        RoleMinibarBackground,
	"minibar_error":             RoleMinibarError,
	"selected_match_foreground": RoleSelectedMatchForeground,
	"selected_match_background": RoleSelectedMatchBackground,
	"match_foreground":          RoleMatchForeground,
	"match_background":          RoleMatchBackground,
	"comment":                   RoleComment,
	"multiline_comment":         RoleMultilineComment,
	"keyword":                   RoleKeyword,
	"string":                    RoleString,
	"char":                      RoleChar,
	"number":                    RoleNumber,
}

func hexToRGB(v int) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Get returns the RGB assigned to role, and whether it was ever set.
// ColorThemeLight's roles all report false, preserving the original's
// unpopulated entry.
func (t *Theme) Get(role Role) (RGB, bool) {
	return t.colors[role], t.set[role]
}

// Set assigns an RGB value to role.
func (t *Theme) Set(role Role, c RGB) {
	t.colors[role] = c
	t.set[role] = true
}

func newTheme(name string, colors map[string]int) *Theme {
	t := &Theme{Name: name}
	for key, v := range colors {
		role, ok := roleNames[key]
		if !ok {
			continue
		}
		t.Set(role, hexToRGB(v))
	}
	return t
}

// Table is the full, ordered collection of named themes, addressed by
// either index or name.
type Table struct {
	Themes []*Theme
}

// ParseTable parses a YAML document of the shape {themes: [{name, colors}]}.
func ParseTable(data []byte) (*Table, error) {
	var doc struct {
		Themes []themeFile `yaml:"themes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	tbl := &Table{}
	for _, tf := range doc.Themes {
		tbl.Themes = append(tbl.Themes, newTheme(tf.Name, tf.Colors))
	}
	return tbl, nil
}

// LoadTable reads and parses a theme table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// DefaultTable returns the built-in table: "default", "light" (a
// deliberately empty placeholder, see package doc), and "blow", matching
// original_source/editor.c's ColorThemeDefault/Light/JonBlow ordering.
func DefaultTable() *Table {
	defaultColors := map[string]int{
		"editor_cursor":             0x000000,
		"editor_foreground":         0x000000,
		"editor_background":         0xffffff,
		"minibar_cursor":            0x082626,
		"minibar_foreground":        0x082626,
		"minibar_background":        0xd6b58d,
		"minibar_error":             0xff0000,
		"selected_match_foreground": 0x082626,
		"selected_match_background": 0xd1b897,
		"match_foreground":          0x082626,
		"match_background":          0x0a3f4a,
		"comment":                   0x44b340,
		"multiline_comment":         0x00ff00,
		"keyword":                   0x8cde94,
		"string":                    0xc1d1e3,
		"char":                      0xff0000,
		"number":                    0xc1d1e3,
	}
	blowColors := map[string]int{
		"editor_cursor":             0xd1b897,
		"editor_foreground":         0xd1b897,
		"editor_background":         0x082626,
		"minibar_cursor":            0x082626,
		"minibar_foreground":        0x082626,
		"minibar_background":        0xd6b58d,
		"minibar_error":             0xff0000,
		"selected_match_foreground": 0x082626,
		"selected_match_background": 0xd1b897,
		"match_foreground":          0x082626,
		"match_background":          0x0a3f4a,
		"comment":                   0x44b340,
		"multiline_comment":         0x00ff00,
		"keyword":                   0x8cde94,
		"string":                    0xc1d1e3,
		"char":                      0xff0000,
		"number":                    0xc1d1e3,
	}
	return &Table{Themes: []*Theme{
		newTheme("default", defaultColors),
		newTheme("light", nil),
		newTheme("blow", blowColors),
	}}
}

// Clamp keeps i within the valid theme index range, mirroring
// handle_command's `theme = limit(theme, 0, ColorThemeCount - 1)`.
func (tb *Table) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(tb.Themes) {
		return len(tb.Themes) - 1
	}
	return i
}

// At returns the clamped theme at index i.
func (tb *Table) At(i int) *Theme {
	return tb.Themes[tb.Clamp(i)]
}

// leadingNumber parses the longest leading run of an optional sign
// followed by digits in s, the way strtol parses a prefix of its input
// rather than demanding the whole string be numeric. Reports false if
// s has no such run.
func leadingNumber(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve parses a `theme` command argument exactly as handle_command
// does: try it as a number first, then as a name prefix match, falling
// back to index 0 if neither resolves. Like read_number's strtol call,
// a leading digit run resolves even with trailing garbage (`"5abc"`
// parses as 5). Returns the resolved, clamped index.
func (tb *Table) Resolve(arg string) int {
	arg = strings.TrimSpace(arg)
	if n, ok := leadingNumber(arg); ok {
		return tb.Clamp(n)
	}
	for i, t := range tb.Themes {
		if t.Name != "" && strings.HasPrefix(t.Name, arg) {
			return tb.Clamp(i)
		}
	}
	return tb.Clamp(-1)
}
