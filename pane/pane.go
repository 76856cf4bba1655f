// Package pane implements the per-window view controller: cursor and
// offset state over a shared buffer.File, the minibar prompt state
// machine, smart-indent editing, and block copy/cut/paste.
//
// Grounded on original_source/editor.c's struct Window and its
// update_window_offsets/limit_window_cursor/insert_character/
// insert_newline/delete_character_or_word/get_block_marks/change_file
// (spec.md §4.3, §4.6).
package pane

import (
	"bytes"
	"fmt"

	"github.com/garaekz/ved/buffer"
	"github.com/garaekz/ved/clipboard"
	"github.com/garaekz/ved/find"
	"github.com/garaekz/ved/highlight"
	"github.com/garaekz/ved/input"
	"github.com/garaekz/ved/logx"
)

const (
	// EditorSpacesPerTab is the tab-insertion width and the un-indent
	// step size, per spec.md's EditorSpacesPerTab constant.
	EditorSpacesPerTab = 2

	// Cursor margins used by UpdateOffsets, per spec.md §4.3.
	EditorCursorMarginTop    = 6
	EditorCursorMarginBottom = 6
	EditorCursorMarginLeft   = 6
	EditorCursorMarginRight  = 6

	// EditorLineNumberMargin is the fixed gutter gap after the line
	// number, per spec.md §4.8.
	EditorLineNumberMargin = 2
)

// FileState is the per-file cache of view scalars a pane restores when
// switching back to a file it has already visited.
type FileState struct {
	CursorX, CursorY int
	CursorXIdeal     int
	OffsetX, OffsetY int
	MarkX, MarkY     int
	MarkValid        bool
	PreviousKey      input.KeyCode
}

// HistoryEntry is one recorded buffer mutation. Merging is deliberately
// not implemented: see DESIGN.md's "Undo merging policy" decision.
type HistoryEntry struct {
	Line int
	Text string
}

// History is the pane's linear, unmerged undo log.
type History struct {
	entries []HistoryEntry
}

// Record appends an entry.
func (h *History) Record(e HistoryEntry) { h.entries = append(h.entries, e) }

// Len reports how many entries have been recorded.
func (h *History) Len() int { return len(h.entries) }

// Pane is one window's view state over a shared file.
type Pane struct {
	File *buffer.File

	CursorX, CursorY int
	CursorXIdeal     int
	OffsetX, OffsetY int

	MarkX, MarkY int
	MarkValid    bool

	MinibarActive bool
	MinibarMode   input.MinibarMode
	MinibarCursor int
	MinibarOffset int
	MinibarData   []byte

	ErrorPresent bool
	ErrorMessage string

	Matches      []find.Match
	MatchIndex   int
	MatchLength  int
	SavedCursorX int
	SavedCursorY int

	PreviousKey input.KeyCode

	fileStates map[buffer.Handle]*FileState

	Redraw bool

	History History

	// Log receives a Debug entry whenever a find scan is abandoned
	// mid-way by a new keystroke. Nil disables it; editor.New and
	// editor.split are the only constructors that set it.
	Log *logx.Logger

	// Rules resolves File.Highlight back to a *highlight.Language so
	// every mutating edit can re-run render_line's classification pass
	// on the lines it touches. Nil disables highlighting entirely;
	// editor.New and editor.split are the only constructors that set
	// it, mirroring Log.
	Rules *highlight.RuleSet
}

// language returns the *highlight.Language active for the pane's
// current file, or nil if there is none (no file, no rules, or the
// file has no language assigned).
func (p *Pane) language() *highlight.Language {
	if p.Rules == nil || p.File == nil || p.File.Highlight == "" {
		return nil
	}
	return p.Rules.ByName(p.File.Highlight)
}

// reclassify re-runs Classify on line, matching render_line's job of
// recoloring a single line after it changes shape.
func (p *Pane) reclassify(line *buffer.Line) {
	highlight.Classify(line, p.language())
}

// New creates a pane with no file, matching split_window's freshly
// allocated sibling pane.
func New() *Pane {
	return &Pane{fileStates: make(map[buffer.Handle]*FileState)}
}

// NewWithFile creates a pane already viewing file.
func NewWithFile(f *buffer.File) *Pane {
	p := New()
	p.File = f
	return p
}

func countDigits(n int) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n != 0 {
		n /= 10
		digits++
	}
	return digits
}

// LeftPadding returns the pane's left gutter width, per
// get_left_padding: 2 cells for the vertical separator when the pane is
// not at screen column 0, plus the line-number digit width, plus the
// fixed line-number margin.
func (p *Pane) LeftPadding(atColumnZero bool) int {
	separator := 0
	if !atColumnZero {
		separator = 2
	}
	lineNumberWidth := 0
	if p.File != nil {
		lineNumberWidth = countDigits(len(p.File.Lines) - 1)
	}
	return separator + lineNumberWidth + EditorLineNumberMargin
}

func updatedOffset(cursor, offset, width, leftMargin, rightMargin int) int {
	if adjust := offset + leftMargin - cursor; adjust > 0 {
		offset -= adjust
		if offset < 0 {
			offset = 0
		}
	}
	if adjust := cursor - (offset + width - rightMargin); adjust > 0 {
		offset += adjust
	}
	return offset
}

// UpdateOffsets reconciles OffsetX/OffsetY against the current cursor
// within an active area of width x height, per spec.md §4.3's
// update_window_offsets. Marks the pane dirty if either offset moved.
func (p *Pane) UpdateOffsets(width, height int) {
	prevX, prevY := p.OffsetX, p.OffsetY
	p.OffsetX = updatedOffset(p.CursorX, p.OffsetX, width, EditorCursorMarginLeft, EditorCursorMarginRight)
	p.OffsetY = updatedOffset(p.CursorY, p.OffsetY, height, EditorCursorMarginTop, EditorCursorMarginBottom)
	if p.OffsetX != prevX || p.OffsetY != prevY {
		p.Redraw = true
	}
}

// CursorLimit clamps CursorY into [0, len(lines)-1] and CursorX into
// [0, len(line.chars)], then reconciles offsets, per limit_window_cursor.
func (p *Pane) CursorLimit(width, height int) {
	if p.File == nil {
		return
	}
	if p.CursorX < 0 {
		p.CursorX = 0
	}
	if p.CursorY < 0 {
		p.CursorY = 0
	}
	if p.CursorY > len(p.File.Lines)-1 {
		p.CursorY = len(p.File.Lines) - 1
	}
	if max := p.File.Lines[p.CursorY].Len(); p.CursorX > max {
		p.CursorX = max
	}
	p.UpdateOffsets(width, height)
}

// SetCursorX moves the cursor horizontally, updating the ideal column,
// per update_window_cursor_x.
func (p *Pane) SetCursorX(x int) {
	p.CursorX = x
	p.CursorXIdeal = x
}

// SetCursorY moves the cursor vertically, restoring the ideal column,
// per update_window_cursor_y.
func (p *Pane) SetCursorY(y int) {
	p.CursorY = y
	p.CursorX = p.CursorXIdeal
}

// SmartHome implements spec.md §4.3: pressing Home when past the
// line's leading spaces moves to the leading-space count; pressing
// again moves to column 0.
func (p *Pane) SmartHome() {
	line := p.File.Lines[p.CursorY]
	spaces := line.LeadingSpaces()
	if p.CursorX > spaces {
		p.SetCursorX(spaces)
	} else {
		p.SetCursorX(0)
	}
}

// InsertChar inserts one byte at the cursor, advances it, and marks the
// file dirty and re-highlighted, per insert_character.
func (p *Pane) InsertChar(b byte) {
	line := p.File.Lines[p.CursorY]
	line.InsertByte(b, p.CursorX)
	p.CursorX++
	p.CursorXIdeal = p.CursorX
	p.reclassify(line)
	p.File.MarkDirty()
}

// Newline splits the current line at the cursor with smart indent, per
// insert_newline: an auto-closing `}` line is inserted when the split
// line now ends in `{` and the previous keystroke was also `{`.
func (p *Pane) Newline() {
	line := p.File.Lines[p.CursorY]
	tail := line.Split(p.CursorX)
	p.reclassify(line)

	indent := line.LeadingSpaces()
	lastByte := byte(0)
	if line.Len() > 0 {
		lastByte = line.Chars.Items()[line.Len()-1]
	}

	insertAt := p.CursorY + 1

	if lastByte == '{' {
		if p.PreviousKey == input.KeyCode('{') {
			closer := buffer.NewLine()
			closer.InsertBytes(bytes.Repeat([]byte{' '}, indent), 0)
			closer.InsertByte('}', closer.Len())
			p.reclassify(closer)
			p.File.Lines = insertLineAt(p.File.Lines, insertAt, closer)
			insertAt++
		}
		indent += EditorSpacesPerTab
	}

	newLine := buffer.NewLine()
	newLine.InsertBytes(bytes.Repeat([]byte{' '}, indent), 0)
	newLine.InsertBytes(tail.Chars.Items(), newLine.Len())
	p.reclassify(newLine)
	p.File.Lines = insertLineAt(p.File.Lines, insertAt, newLine)

	p.CursorX = indent
	p.CursorY++
	p.File.MarkDirty()
}

func insertLineAt(lines []*buffer.Line, i int, l *buffer.Line) []*buffer.Line {
	lines = append(lines, nil)
	copy(lines[i+1:], lines[i:])
	lines[i] = l
	return lines
}

func removeLineAt(lines []*buffer.Line, i int) []*buffer.Line {
	copy(lines[i:], lines[i+1:])
	return lines[:len(lines)-1]
}

// deleteCharacter merges with the previous line at column 0, else
// removes one byte before the cursor, per delete_character.
func (p *Pane) deleteCharacter() {
	line := p.File.Lines[p.CursorY]

	if p.CursorX > 0 {
		line.DeleteRange(p.CursorX-1, 1)
		p.SetCursorX(p.CursorX - 1)
		p.reclassify(line)
	} else if p.CursorY > 0 {
		prev := p.File.Lines[p.CursorY-1]
		prevLen := prev.Len()
		p.SetCursorX(prevLen)
		p.SetCursorY(p.CursorY - 1)
		prev.Merge(line)
		p.reclassify(prev)
		p.File.Lines = removeLineAt(p.File.Lines, p.CursorY+1)
	}
	p.File.MarkDirty()
}

func isIdentifierLiteral(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

// deleteCount classifies the run of bytes preceding cursor within data,
// per get_delete_count.
func deleteCount(data []byte, cursor int, ctrl bool) int {
	if cursor == 0 {
		return 1
	}

	spaceCount, otherCount, charCount := 0, 0, 0
	for i := 0; i < cursor; i++ {
		switch {
		case data[i] == ' ':
			if spaceCount == 2 {
				charCount, otherCount = 0, 0
			}
			spaceCount++
		case isIdentifierLiteral(data[i]):
			if spaceCount != 0 {
				charCount = 0
			}
			spaceCount, otherCount = 0, 0
			charCount++
		default:
			if spaceCount != 0 {
				otherCount = 0
			}
			charCount, spaceCount = 0, 0
			otherCount++
		}
	}

	alignedToTab := spaceCount != 0 && spaceCount%EditorSpacesPerTab == 0

	switch {
	case ctrl:
		return spaceCount + charCount + otherCount
	case alignedToTab:
		return EditorSpacesPerTab
	default:
		return 1
	}
}

// DeleteCharOrWord deletes one byte, or an un-indent step, or (with
// ctrl) the whole preceding run, per delete_character_or_word.
func (p *Pane) DeleteCharOrWord(ctrl bool) {
	line := p.File.Lines[p.CursorY]
	count := deleteCount(line.Chars.Items(), p.CursorX, ctrl)
	for ; count > 0; count-- {
		p.deleteCharacter()
		line = p.File.Lines[p.CursorY]
	}
}

// Mark sets the selection anchor at the current cursor, per UserKeyMark.
func (p *Pane) Mark() {
	p.MarkValid = true
	p.MarkX, p.MarkY = p.CursorX, p.CursorY
}

// BlockRange returns the mark/cursor span normalized so the start
// precedes the end, per get_block_marks.
func (p *Pane) BlockRange() (startX, startY, endX, endY int) {
	if p.MarkY > p.CursorY || (p.MarkY == p.CursorY && p.MarkX > p.CursorX) {
		return p.CursorX, p.CursorY, p.MarkX, p.MarkY
	}
	return p.MarkX, p.MarkY, p.CursorX, p.CursorY
}

// Copy appends the marked block to clip, newline-separated across
// lines, per copy_block.
func (p *Pane) Copy(clip *clipboard.Clipboard) {
	startX, startY, endX, endY := p.BlockRange()
	clip.Clear()

	for y := startY; y < endY; y++ {
		line := p.File.Lines[y]
		clip.Append(line.Chars.Items()[startX:])
		clip.AppendByte('\n')
		startX = 0
	}
	clip.Append(p.File.Lines[endY].Chars.Items()[startX:endX])
}

// Cut copies the marked block then deletes it, leaving the cursor at
// the block's start, per cut.
func (p *Pane) Cut(clip *clipboard.Clipboard) {
	p.Copy(clip)
	p.deleteBlock()
}

func (p *Pane) deleteBlock() {
	startX, startY, endX, endY := p.BlockRange()

	if startY == endY {
		line := p.File.Lines[startY]
		line.DeleteRange(startX, endX-startX)
		p.reclassify(line)
		p.SetCursorX(startX)
		p.SetCursorY(startY)
		p.File.MarkDirty()
		return
	}

	last := p.File.Lines[endY]
	tail := append([]byte(nil), last.Chars.Items()[endX:]...)

	survivor := p.File.Lines[startY]
	survivor.Chars.Truncate(startX)
	survivor.Colors.Truncate(startX)
	survivor.InsertBytes(tail, startX)
	p.reclassify(survivor)

	for y := endY; y > startY; y-- {
		p.File.Lines = removeLineAt(p.File.Lines, y)
	}

	p.SetCursorX(startX)
	p.SetCursorY(startY)
	p.File.MarkDirty()
}

// Paste inserts the clipboard contents at the cursor, splitting on each
// '\n', leaving the cursor at the end of the inserted span, per
// insert_block/paste.
func (p *Pane) Paste(clip *clipboard.Clipboard) {
	data := clip.Bytes()
	if len(data) == 0 {
		return
	}
	segments := bytes.Split(data, []byte{'\n'})

	line := p.File.Lines[p.CursorY]
	tail := append([]byte(nil), line.Chars.Items()[p.CursorX:]...)
	line.Chars.Truncate(p.CursorX)
	line.Colors.Truncate(p.CursorX)
	line.InsertBytes(segments[0], p.CursorX)
	p.reclassify(line)

	cursorY := p.CursorY
	cursorX := p.CursorX + len(segments[0])

	for i := 1; i < len(segments); i++ {
		newLine := buffer.NewLineFromBytes(append([]byte(nil), segments[i]...))
		p.reclassify(newLine)
		p.File.Lines = insertLineAt(p.File.Lines, cursorY+i, newLine)
		cursorY++
		cursorX = len(segments[i])
	}

	if len(segments) == 1 {
		line.InsertBytes(tail, p.CursorX+len(segments[0]))
		p.reclassify(line)
	} else {
		last := p.File.Lines[cursorY]
		last.InsertBytes(tail, last.Len())
		p.reclassify(last)
	}

	p.SetCursorX(cursorX)
	p.SetCursorY(cursorY)
	p.File.MarkDirty()
}

// ChangeFile saves the pane's view state for its current file (if any)
// into its per-file cache, switches to file, and restores a cached view
// if one exists for it, per change_file.
func (p *Pane) ChangeFile(f *buffer.File) {
	if p.File != nil {
		p.fileStates[p.File.Handle] = &FileState{
			CursorX: p.CursorX, CursorY: p.CursorY, CursorXIdeal: p.CursorXIdeal,
			OffsetX: p.OffsetX, OffsetY: p.OffsetY,
			MarkX: p.MarkX, MarkY: p.MarkY, MarkValid: p.MarkValid,
			PreviousKey: p.PreviousKey,
		}
	}

	p.File = f

	if state, ok := p.fileStates[f.Handle]; ok {
		p.CursorX, p.CursorY, p.CursorXIdeal = state.CursorX, state.CursorY, state.CursorXIdeal
		p.OffsetX, p.OffsetY = state.OffsetX, state.OffsetY
		p.MarkX, p.MarkY, p.MarkValid = state.MarkX, state.MarkY, state.MarkValid
		p.PreviousKey = state.PreviousKey
	} else {
		p.CursorX, p.CursorY, p.CursorXIdeal = 0, 0, 0
		p.OffsetX, p.OffsetY = 0, 0
		p.MarkX, p.MarkY, p.MarkValid = 0, 0, false
		p.PreviousKey = 0
	}

	p.Redraw = true
}

// DisplayError sets the pane's transient status-row error message, per
// display_error.
func (p *Pane) DisplayError(format string, args ...interface{}) {
	p.ErrorMessage = fmt.Sprintf(format, args...)
	p.ErrorPresent = true
}

// ClearError clears the transient error line, per KeyCodeEscape's
// handler in editor_handle_keypress.
func (p *Pane) ClearError() {
	p.ErrorPresent = false
}

// EnterMinibar opens an empty minibar prompt, saving the cursor so
// Escape can revert an aborted find, per enter_minibar_mode.
func (p *Pane) EnterMinibar(mode input.MinibarMode) {
	p.SavedCursorX, p.SavedCursorY = p.CursorX, p.CursorY
	p.MinibarActive = true
	p.MinibarMode = mode
	p.MinibarCursor = 0
	p.MinibarOffset = 0
	p.MinibarData = nil
	p.ErrorPresent = false
}

// ExitMinibar closes the prompt and clears any find matches, per
// exit_minibar_mode.
func (p *Pane) ExitMinibar() {
	p.MinibarData = nil
	p.Matches = nil
	p.MinibarActive = false
	p.MinibarCursor = 0
	p.MinibarOffset = 0
}

// CancelFind restores the cursor saved on entering find mode and clears
// the match list, per find mode's Escape handling (spec.md §4.7).
func (p *Pane) CancelFind() {
	p.CursorX, p.CursorY = p.SavedCursorX, p.SavedCursorY
	p.Matches = nil
	p.ExitMinibar()
}

// insertMinibarByte inserts b into MinibarData at MinibarCursor and
// advances the cursor, per minibar_handle_keypress's printable-key arm.
func (p *Pane) insertMinibarByte(b byte) {
	p.MinibarData = append(p.MinibarData, 0)
	copy(p.MinibarData[p.MinibarCursor+1:], p.MinibarData[p.MinibarCursor:])
	p.MinibarData[p.MinibarCursor] = b
	p.MinibarCursor++
}

// deleteMinibarChar removes one byte, or (with ctrl) a whole preceding
// run, before MinibarCursor, reusing the same run classification
// delete_character_or_word uses for the main buffer.
func (p *Pane) deleteMinibarChar(ctrl bool) {
	if p.MinibarCursor == 0 {
		return
	}
	count := deleteCount(p.MinibarData, p.MinibarCursor, ctrl)
	start := p.MinibarCursor - count
	p.MinibarData = append(p.MinibarData[:start], p.MinibarData[p.MinibarCursor:]...)
	p.MinibarCursor = start
}

// JumpToMatch moves the cursor onto the current find match, forcing an
// offset reload when the match lies past the bottom margin of the
// active area, per set_cursor_based_on_position.
func (p *Pane) JumpToMatch(height int) {
	if p.MatchIndex < 0 || p.MatchIndex >= len(p.Matches) {
		return
	}
	m := p.Matches[p.MatchIndex]
	if m.Y >= p.OffsetY+height-EditorCursorMarginBottom {
		p.OffsetY = 1 << 30
	}
	p.CursorY = m.Y
	p.CursorX = m.X
	p.Redraw = true
}

// FindInFile rebuilds the match list from MinibarData against the
// pane's file and jumps to the match closest to the cursor saved when
// find mode was entered, per find_in_file. pending may be nil to
// disable mid-scan abort checking.
func (p *Pane) FindInFile(height int, pending find.PendingChecker) {
	p.Matches = nil

	if len(p.MinibarData) == 0 {
		p.Redraw = true
		return
	}

	lines := make([]find.Line, len(p.File.Lines))
	for i, l := range p.File.Lines {
		lines[i] = l
	}

	matches, aborted := find.InFile(p.MinibarData, lines, pending)
	if aborted {
		if p.Log != nil {
			p.Log.Debug("find scan aborted by a new keystroke")
		}
		return
	}

	p.Matches = matches
	p.MatchLength = len(p.MinibarData)
	p.MatchIndex = find.ClosestMatchIndex(matches, p.SavedCursorY)
	p.JumpToMatch(height)
}

// cycleMatch advances MatchIndex by delta matches and jumps the cursor
// there, a no-op with no matches, per minibar_handle_keypress's
// up/down/ctrl-down find-navigation arms.
func (p *Pane) cycleMatch(delta, height int) {
	if len(p.Matches) == 0 {
		return
	}
	p.MatchIndex = find.Cycle(p.MatchIndex, delta, len(p.Matches))
	p.JumpToMatch(height)
}

// HandleMinibarKey applies the purely pane-local subset of
// minibar_handle_keypress: prompt-line editing, cursor motion, and find
// match navigation. Enter is deliberately not handled here — acting on
// a finished open/new/command line needs the file store and region
// tree the pane does not have access to, so the editor package inspects
// MinibarMode/MinibarData itself on Enter and calls ExitMinibar when
// done. Returns false for any key it does not recognize.
func (p *Pane) HandleMinibarKey(k input.KeyCode, width, height int, pending find.PendingChecker) bool {
	if k.IsPrintable() {
		p.insertMinibarByte(k.Byte())
		if p.MinibarMode == input.MinibarModeFind {
			p.FindInFile(height, pending)
		}
		return true
	}

	switch k {
	case input.KeyEscape:
		p.CancelFind()
	case input.KeyLeft:
		if p.MinibarCursor > 0 {
			p.MinibarCursor--
		}
	case input.KeyRight:
		if p.MinibarCursor < len(p.MinibarData) {
			p.MinibarCursor++
		}
	case input.KeyHome:
		p.MinibarCursor = 0
	case input.KeyEnd:
		p.MinibarCursor = len(p.MinibarData)
	case input.KeyUp:
		if p.MinibarMode == input.MinibarModeFind {
			p.cycleMatch(-1, height)
		}
	case input.KeyDown:
		if p.MinibarMode == input.MinibarModeFind {
			p.cycleMatch(1, height)
		}
	case input.KeyCtrlDown:
		if p.MinibarMode == input.MinibarModeFind {
			p.cycleMatch(find.SkipJump(len(p.Matches)), height)
		}
	case input.KeyCtrlDelete:
		p.deleteMinibarChar(true)
		if p.MinibarMode == input.MinibarModeFind {
			p.FindInFile(height, pending)
		}
	case input.KeyDelete:
		p.deleteMinibarChar(false)
		if p.MinibarMode == input.MinibarModeFind {
			p.FindInFile(height, pending)
		}
	default:
		return false
	}

	if p.File != nil {
		p.CursorLimit(width, height)
	}
	return true
}

// HandleKey applies the purely pane-local subset of
// editor_handle_keypress: cursor motion, editing, mark, clipboard ops,
// save (ctrl-S), and ctrl-F (find mode entry) — all gated on a file
// being open just like the original's window->file-guarded switch. It
// does not know about region focus/resize/close/swap or the remaining
// minibar-entry keys (ctrl-G/N/R) — those require the region tree and
// are dispatched by the editor package first, which falls through to
// HandleKey only when the key is not one of its own. Returns false for
// any key it does not recognize, in which case the caller should treat
// it as a printable insert if IsPrintable.
func (p *Pane) HandleKey(k input.KeyCode, clip *clipboard.Clipboard, width, height int) bool {
	if p.File == nil {
		return false
	}

	switch k {
	case input.KeyUp:
		p.SetCursorY(p.CursorY - 1)
	case input.KeyDown:
		p.SetCursorY(p.CursorY + 1)
	case input.UserKeyPageUp:
		p.SetCursorY(p.CursorY - height/2)
		p.OffsetY -= height / 2
		if p.OffsetY < 0 {
			p.OffsetY = 0
		}
		p.Redraw = true
	case input.UserKeyPageDown:
		p.SetCursorY(p.CursorY + height/2)
		p.OffsetY += height / 2
		p.Redraw = true
	case input.KeyShiftHome:
		p.SetCursorX(0)
		p.SetCursorY(0)
	case input.KeyShiftEnd:
		last := len(p.File.Lines) - 1
		p.SetCursorX(p.File.Lines[last].Len())
		p.SetCursorY(last)
	case input.KeyLeft:
		p.SetCursorX(p.CursorX - 1)
	case input.KeyRight:
		p.SetCursorX(p.CursorX + 1)
	case input.KeyHome:
		p.SmartHome()
	case input.KeyEnd:
		p.SetCursorX(p.File.Lines[p.CursorY].Len())
	case input.KeyCtrlDelete:
		p.DeleteCharOrWord(true)
	case input.KeyDelete:
		p.DeleteCharOrWord(false)
	case input.KeyTab:
		for i := 0; i < EditorSpacesPerTab; i++ {
			p.InsertChar(' ')
		}
	case input.KeyEnter:
		p.Newline()
	case input.KeyEscape:
		p.ErrorPresent = false
	case input.KeyCtrlF:
		p.EnterMinibar(input.MinibarModeFind)
	case input.UserKeyMark:
		p.Mark()
	case input.UserKeyCut:
		p.Cut(clip)
	case input.UserKeyCopy:
		p.Copy(clip)
	case input.UserKeyPaste:
		p.Paste(clip)
	case input.UserKeySave:
		err := p.File.Save()
		if p.Log != nil {
			p.Log.FileBadge(p.File.Path, err == nil)
		}
		if err != nil {
			p.DisplayError("can not save file `%s`", p.File.Path)
		}
	default:
		if k.IsPrintable() {
			p.InsertChar(k.Byte())
		} else {
			return false
		}
	}

	p.PreviousKey = k
	p.CursorLimit(width, height)
	return true
}
