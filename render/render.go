// Package render turns a region.Tree of panes into one terminal frame:
// a dirty-row bitmap, per-byte SGR color selection, the status/minibar
// row, and the final hardware cursor position plus its OSC 12 color.
//
// Grounded on original_source/editor.c's mark_lines_for_redraw/
// render_window/render_status_bar/render (spec.md §4.8, §4.9), and on
// garaekz-tfx/runfx/render.go's RenderEngine for the "build a frame into
// one buffer, write it once" shape — re-targeted here at per-row dirty
// bitmaps instead of whole-frame diffing, since editor content changes
// row-by-row rather than wholesale.
package render

import (
	"bytes"
	"fmt"

	"github.com/garaekz/ved/buffer"
	"github.com/garaekz/ved/color"
	"github.com/garaekz/ved/pane"
	"github.com/garaekz/ved/region"
	"github.com/garaekz/ved/terminal"
	"github.com/garaekz/ved/theme"
)

// MinibarCount is the number of rows each pane reserves for its
// status/minibar line.
const MinibarCount = 1

const (
	MinibarMaxPathWidth      = 20
	MinibarCommandPadding    = 1
	MinibarLeftPadding       = 1
	MinibarRightPadding      = 1
	MinibarLeftCursorMargin  = 5
	MinibarRightCursorMargin = 5
)

// window returns the *pane.Pane stored at a region leaf. Leaves with no
// pane payload (not expected in practice, but defensive against a
// mis-wired tree) render as blank.
func window(tree *region.Tree, h region.Handle) *pane.Pane {
	p, _ := tree.Window(h).(*pane.Pane)
	return p
}

func visibleLineCount(rect region.Rect) int {
	h := rect.Height - MinibarCount
	if h < 0 {
		return 0
	}
	return h
}

// Dirty is the per-frame bitmap of absolute screen rows that need
// repainting, indexed from 0 at the region tree's root.
type Dirty struct {
	rows []bool
}

// NewDirty allocates a bitmap covering height rows, all clean.
func NewDirty(height int) *Dirty {
	return &Dirty{rows: make([]bool, height)}
}

func (d *Dirty) mark(row int) {
	if row >= 0 && row < len(d.rows) {
		d.rows[row] = true
	}
}

func (d *Dirty) markRange(from, count int) {
	for i := 0; i < count; i++ {
		d.mark(from + i)
	}
}

// Rows reports whether row needs repainting.
func (d *Dirty) Rows(row int) bool {
	if row < 0 || row >= len(d.rows) {
		return false
	}
	return d.rows[row]
}

// Len returns how many rows the bitmap covers.
func (d *Dirty) Len() int { return len(d.rows) }

// MarkForRedraw builds the dirty-row bitmap for one frame and clears the
// redraw flags it consumes, per mark_lines_for_redraw: first every pane
// whose own Redraw flag or whose file's Redraw flag is set claims its
// whole rectangle; then every pane's individually dirty visible lines
// claim their row; finally every pane's status row is always marked.
// File and line flags are cleared only after every pane has been
// checked, since a file can be shared by more than one pane.
func MarkForRedraw(tree *region.Tree, height int) *Dirty {
	dirty := NewDirty(height)
	leaves := tree.Leaves()

	for _, h := range leaves {
		p := window(tree, h)
		if p == nil {
			continue
		}
		rect := tree.Rect(h)

		if p.Redraw || (p.File != nil && p.File.Redraw) {
			p.Redraw = false
			dirty.markRange(rect.Y, rect.Height)
		}

		if p.File != nil {
			for j := 0; j < visibleLineCount(rect); j++ {
				idx := p.OffsetY + j
				if idx < 0 || idx >= len(p.File.Lines) {
					continue
				}
				if p.File.Lines[idx].Redraw {
					dirty.mark(rect.Y + j)
				}
			}
		}

		dirty.markRange(rect.Y+rect.Height-MinibarCount, MinibarCount)
	}

	for _, h := range leaves {
		p := window(tree, h)
		if p == nil || p.File == nil {
			continue
		}
		p.File.Redraw = false
		rect := tree.Rect(h)
		for j := 0; j < visibleLineCount(rect); j++ {
			idx := p.OffsetY + j
			if idx < 0 || idx >= len(p.File.Lines) {
				continue
			}
			p.File.Lines[idx].Redraw = false
		}
	}

	return dirty
}

// Engine accumulates one frame's escape-sequence output into a single
// buffer, flushed in one write per spec.md §4.2's "no direct writes
// during a frame" rule.
type Engine struct {
	Themes     *theme.Table
	ThemeIndex int
	Mode       color.Mode
}

// NewEngine creates a render engine over a theme table, starting at
// theme index 0 ("default").
func NewEngine(themes *theme.Table) *Engine {
	return &Engine{Themes: themes, Mode: color.ModeTrueColor}
}

func (e *Engine) currentTheme() *theme.Theme {
	return e.Themes.At(e.ThemeIndex)
}

func (e *Engine) role(role theme.Role) theme.RGB {
	rgb, _ := e.currentTheme().Get(role)
	return rgb
}

func (e *Engine) setColors(buf *bytes.Buffer, fg, bg theme.Role) {
	buf.WriteString(e.role(fg).Color().Render(e.Mode))
	buf.WriteString(e.role(bg).Color().Background(e.Mode))
}

func moveCursor(buf *bytes.Buffer, row, col int) {
	fmt.Fprintf(buf, "\x1b[%d;%dH", row+1, col+1)
}

func clearLine(buf *bytes.Buffer, row int) {
	moveCursor(buf, row, 0)
	buf.WriteString(terminal.EraseLineSeq)
}

// classColor maps a highlighter color class to the theme role that
// paints it, per render_line's ColorType indices.
func classColor(c buffer.ColorClass) theme.Role {
	switch c {
	case buffer.ColorComment:
		return theme.RoleComment
	case buffer.ColorMultilineComment:
		return theme.RoleMultilineComment
	case buffer.ColorKeyword:
		return theme.RoleKeyword
	case buffer.ColorString:
		return theme.RoleString
	case buffer.ColorChar:
		return theme.RoleChar
	case buffer.ColorNumber:
		return theme.RoleNumber
	default:
		return theme.RoleEditorForeground
	}
}

func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n != 0 {
		n /= 10
		d++
	}
	return d
}

// matchAt finds the match (if any) covering column x on line y, and
// whether it starts exactly at x.
func matchAt(p *pane.Pane, x, y int) (covers bool, startsHere bool) {
	for _, m := range p.Matches {
		if m.Y != y {
			continue
		}
		if x >= m.X && x < m.X+p.MatchLength {
			return true, x == m.X
		}
	}
	return false, false
}

// renderLine paints one visible screen row of a pane's file content,
// applying the match-span / highlight-class / default color priority
// from spec.md §4.8 step 4.
func (e *Engine) renderLine(buf *bytes.Buffer, tree *region.Tree, h region.Handle, p *pane.Pane, screenRow int) {
	rect := tree.Rect(h)
	lineIndex := p.OffsetY + (screenRow - rect.Y)
	line := p.File.Lines[lineIndex]

	moveCursor(buf, screenRow, rect.X)

	if rect.X != 0 {
		e.setColors(buf, theme.RoleMinibarForeground, theme.RoleMinibarBackground)
		buf.WriteByte(' ')
		e.setColors(buf, theme.RoleEditorForeground, theme.RoleEditorBackground)
		buf.WriteByte(' ')
	}

	numberWidth := countDigits(len(p.File.Lines) - 1)
	e.setColors(buf, theme.RoleEditorForeground, theme.RoleEditorBackground)
	fmt.Fprintf(buf, "%*d%*s", numberWidth, lineIndex, pane.EditorLineNumberMargin, "")

	width, _ := activeSize(tree, h, p)
	chars := line.Bytes()
	size := len(chars) - p.OffsetX
	if size > width {
		size = width
	}
	if size < 0 {
		size = 0
	}

	lastFg, lastBg := theme.Role(-1), theme.Role(-1)
	for i := 0; i < size; i++ {
		x := p.OffsetX + i
		fg, bg := theme.RoleEditorForeground, theme.RoleEditorBackground

		if covers, startsHere := matchAt(p, x, lineIndex); covers {
			if startsHere && x == p.CursorX && lineIndex == p.CursorY {
				fg, bg = theme.RoleSelectedMatchForeground, theme.RoleSelectedMatchBackground
			} else {
				fg, bg = theme.RoleMatchForeground, theme.RoleMatchBackground
			}
		} else if p.File.Highlight != "" {
			fg = classColor(line.Colors.Items()[x])
		}

		if fg != lastFg || bg != lastBg {
			e.setColors(buf, fg, bg)
			lastFg, lastBg = fg, bg
		}
		buf.WriteByte(chars[x])
	}
}

// activeSize returns a pane's active area per get_active_size: region
// size minus the left gutter and the reserved status row.
func activeSize(tree *region.Tree, h region.Handle, p *pane.Pane) (width, height int) {
	rect := tree.Rect(h)
	return rect.Width - p.LeftPadding(rect.X == 0), visibleLineCount(rect)
}

// renderBlankRow paints one empty screen row below a file's last visible
// line, or the whole body when the pane has no open file, still drawing
// the vertical separator when present.
func (e *Engine) renderBlankRow(buf *bytes.Buffer, rect region.Rect, row int) {
	moveCursor(buf, row, rect.X)
	if rect.X != 0 {
		e.setColors(buf, theme.RoleMinibarForeground, theme.RoleMinibarBackground)
		buf.WriteByte(' ')
		e.setColors(buf, theme.RoleEditorForeground, theme.RoleEditorBackground)
		buf.WriteByte(' ')
	}
}

// renderStatusBar paints a pane's final row: the error message alone, or
// the active minibar prompt (if any) followed by the right-justified
// path/percent suffix, per render_status_bar.
func (e *Engine) renderStatusBar(buf *bytes.Buffer, tree *region.Tree, h region.Handle, p *pane.Pane, focused bool) {
	rect := tree.Rect(h)
	row := rect.Y + rect.Height - 1
	width := rect.Width - MinibarLeftPadding - MinibarRightPadding

	e.setColors(buf, theme.RoleMinibarForeground, theme.RoleMinibarBackground)
	moveCursor(buf, row, rect.X)
	fmt.Fprintf(buf, "%*s", MinibarLeftPadding, "")

	switch {
	case p.ErrorPresent:
		e.setColors(buf, theme.RoleMinibarError, theme.RoleMinibarBackground)
		msg := "error: " + p.ErrorMessage
		if len(msg) > width {
			msg = msg[:width]
		}
		buf.WriteString(msg)
		width -= len(msg)
		e.setColors(buf, theme.RoleMinibarForeground, theme.RoleMinibarBackground)
		if width > 0 {
			fmt.Fprintf(buf, "%*s", width, "")
		}
		fmt.Fprintf(buf, "%*s", MinibarRightPadding, "")
		buf.WriteString(color.Reset)
		return

	case p.MinibarActive:
		if len(p.Matches) > 0 {
			width -= countDigits(len(p.Matches)) + 1 + countDigits(p.MatchIndex) + 1
		}
		prompt := p.MinibarMode.Prompt()
		buf.WriteString(prompt)
		width -= len(prompt)

		barWidth := width - MinibarCommandPadding
		if barWidth < 0 {
			barWidth = 0
		}
		end := p.MinibarOffset + barWidth
		if end > len(p.MinibarData) {
			end = len(p.MinibarData)
		}
		start := p.MinibarOffset
		if start > end {
			start = end
		}
		buf.Write(p.MinibarData[start:end])
		width -= end - start
	}

	if width > 0 {
		fmt.Fprintf(buf, "%*s", width, "")
	}

	if len(p.Matches) > 0 {
		fmt.Fprintf(buf, "%d/%d ", p.MatchIndex+1, len(p.Matches))
	}

	if focused {
		buf.WriteString(color.Bold)
	}

	if p.File != nil {
		if p.MarkValid {
			buf.WriteString("[] ")
		}
		buf.WriteString(p.File.Path)
		if !p.File.Saved {
			buf.WriteByte('*')
		}
		percent := 0
		if len(p.File.Lines) > 0 {
			percent = 100 * p.CursorY / len(p.File.Lines)
		}
		fmt.Fprintf(buf, " %d%%", percent)
	} else {
		buf.WriteString("no file")
	}

	fmt.Fprintf(buf, "%*s", MinibarRightPadding, "")
	buf.WriteString(color.Reset)
}

// renderPane paints every dirty row belonging to one leaf.
func (e *Engine) renderPane(buf *bytes.Buffer, tree *region.Tree, h region.Handle, dirty *Dirty, focused bool) {
	p := window(tree, h)
	if p == nil {
		return
	}
	rect := tree.Rect(h)

	if p.File != nil {
		visible := visibleLineCount(rect)
		for y := 0; y < visible; y++ {
			row := rect.Y + y
			if !dirty.Rows(row) {
				continue
			}
			if p.OffsetY+y >= len(p.File.Lines) {
				e.renderBlankRow(buf, rect, row)
				continue
			}
			e.renderLine(buf, tree, h, p, row)
		}
	} else {
		for y := 0; y < rect.Height-MinibarCount; y++ {
			row := rect.Y + y
			if dirty.Rows(row) {
				e.renderBlankRow(buf, rect, row)
			}
		}
	}

	e.renderStatusBar(buf, tree, h, p, focused)
}

// Cursor is the resolved hardware cursor position and color for one
// frame, per spec.md §4.8 step 6.
type Cursor struct {
	Row, Col int
	Color    theme.RGB
}

func focusedCursor(tree *region.Tree, h region.Handle, p *pane.Pane) Cursor {
	rect := tree.Rect(h)
	if p.MinibarActive {
		return Cursor{
			Row: rect.Y + rect.Height - 1,
			Col: rect.X + p.MinibarCursor - p.MinibarOffset + MinibarLeftPadding + len(p.MinibarMode.Prompt()),
		}
	}
	return Cursor{
		Row: rect.Y + (p.CursorY - p.OffsetY),
		Col: rect.X + (p.CursorX - p.OffsetX) + p.LeftPadding(rect.X == 0),
	}
}

// Render builds one full frame: dirty-row clearing, every pane's body
// and status row, and the focused pane's hardware cursor. The returned
// buffer and cursor are meant to be written/positioned in a single pass
// by the caller (editor), matching "no direct writes during a frame".
func (e *Engine) Render(tree *region.Tree, focused region.Handle, height int) ([]byte, Cursor) {
	dirty := MarkForRedraw(tree, height)

	var buf bytes.Buffer
	e.setColors(&buf, theme.RoleEditorForeground, theme.RoleEditorBackground)
	for row := 0; row < dirty.Len(); row++ {
		if dirty.Rows(row) {
			clearLine(&buf, row)
		}
	}

	buf.WriteString(terminal.HideCursorSeq)

	for _, h := range tree.Leaves() {
		e.renderPane(&buf, tree, h, dirty, h == focused)
	}

	fp := window(tree, focused)
	cursor := focusedCursor(tree, focused, fp)
	if fp.MinibarActive {
		cursor.Color = e.role(theme.RoleMinibarCursor)
	} else {
		cursor.Color = e.role(theme.RoleEditorCursor)
	}

	buf.WriteString(terminal.SetCursorColorSeq(cursor.Color.R, cursor.Color.G, cursor.Color.B))
	moveCursor(&buf, cursor.Row, cursor.Col)
	buf.WriteString(terminal.ShowCursorSeq)

	return buf.Bytes(), cursor
}
