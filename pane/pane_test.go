package pane

import (
	"testing"

	"github.com/garaekz/ved/buffer"
	"github.com/garaekz/ved/clipboard"
	"github.com/garaekz/ved/find"
	"github.com/garaekz/ved/input"
)

func fileFromLines(lines ...string) *buffer.File {
	f := buffer.NewEmptyFile("x")
	f.Lines = nil
	for _, l := range lines {
		f.Lines = append(f.Lines, buffer.NewLineFromBytes([]byte(l)))
	}
	return f
}

func TestUpdateOffsetsPullsLeftMargin(t *testing.T) {
	p := NewWithFile(fileFromLines("hello"))
	p.OffsetX = 10
	p.CursorX = 2
	p.UpdateOffsets(40, 20)
	if p.OffsetX != 0 {
		t.Fatalf("OffsetX = %d, want 0 (cursor pulled below left margin)", p.OffsetX)
	}
}

func TestUpdateOffsetsPushesRightMargin(t *testing.T) {
	p := NewWithFile(fileFromLines("hello"))
	p.CursorX = 50
	p.UpdateOffsets(40, 20)
	if p.OffsetX == 0 {
		t.Fatalf("OffsetX should have advanced to keep cursor in view, got 0")
	}
}

func TestCursorLimitClampsToLineLength(t *testing.T) {
	p := NewWithFile(fileFromLines("ab"))
	p.CursorX = 99
	p.CursorLimit(40, 20)
	if p.CursorX != 2 {
		t.Fatalf("CursorX = %d, want 2", p.CursorX)
	}
}

func TestSmartHomeTwoStep(t *testing.T) {
	p := NewWithFile(fileFromLines("    hi"))
	p.CursorX = 6
	p.SmartHome()
	if p.CursorX != 4 {
		t.Fatalf("first SmartHome: CursorX = %d, want 4", p.CursorX)
	}
	p.SmartHome()
	if p.CursorX != 0 {
		t.Fatalf("second SmartHome: CursorX = %d, want 0", p.CursorX)
	}
}

func TestInsertCharAdvancesCursorAndMarksDirty(t *testing.T) {
	p := NewWithFile(fileFromLines("ac"))
	p.File.Saved = true
	p.CursorX = 1
	p.InsertChar('b')
	if p.File.Lines[0].String() != "abc" {
		t.Fatalf("got %q, want abc", p.File.Lines[0].String())
	}
	if p.CursorX != 2 {
		t.Fatalf("CursorX = %d, want 2", p.CursorX)
	}
	if p.File.Saved {
		t.Fatal("file should be marked dirty")
	}
}

func TestNewlineSplitsAndIndents(t *testing.T) {
	p := NewWithFile(fileFromLines("  abcd"))
	p.CursorX = 4
	p.Newline()
	if len(p.File.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(p.File.Lines))
	}
	if p.File.Lines[0].String() != "  ab" {
		t.Fatalf("line 0 = %q, want \"  ab\"", p.File.Lines[0].String())
	}
	if p.File.Lines[1].String() != "  cd" {
		t.Fatalf("line 1 = %q, want \"  cd\"", p.File.Lines[1].String())
	}
	if p.CursorY != 1 || p.CursorX != 2 {
		t.Fatalf("cursor = (%d,%d), want (2,1)", p.CursorX, p.CursorY)
	}
}

func TestNewlineAutoClosesBrace(t *testing.T) {
	p := NewWithFile(fileFromLines("if (x) {"))
	p.CursorX = p.File.Lines[0].Len()
	p.PreviousKey = '{'
	p.Newline()
	if len(p.File.Lines) != 3 {
		t.Fatalf("got %d lines, want 3 (original, auto-closer, new cursor line)", len(p.File.Lines))
	}
	if p.File.Lines[1].String() != "}" {
		t.Fatalf("auto-closer line = %q, want \"}\"", p.File.Lines[1].String())
	}
	if p.CursorX != EditorSpacesPerTab {
		t.Fatalf("CursorX = %d, want %d (extra indent)", p.CursorX, EditorSpacesPerTab)
	}
}

func TestDeleteCharMergesLines(t *testing.T) {
	p := NewWithFile(fileFromLines("ab", "cd"))
	p.CursorX, p.CursorY = 0, 1
	p.DeleteCharOrWord(false)
	if len(p.File.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(p.File.Lines))
	}
	if p.File.Lines[0].String() != "abcd" {
		t.Fatalf("got %q, want abcd", p.File.Lines[0].String())
	}
	if p.CursorX != 2 || p.CursorY != 0 {
		t.Fatalf("cursor = (%d,%d), want (2,0)", p.CursorX, p.CursorY)
	}
}

func TestDeleteCharUnindentsOnTabBoundary(t *testing.T) {
	p := NewWithFile(fileFromLines("  x"))
	p.CursorX = 2
	p.DeleteCharOrWord(false)
	if p.File.Lines[0].String() != "x" {
		t.Fatalf("got %q, want \"x\"", p.File.Lines[0].String())
	}
	if p.CursorX != 0 {
		t.Fatalf("CursorX = %d, want 0", p.CursorX)
	}
}

func TestDeleteCharCtrlDeletesWholeWord(t *testing.T) {
	p := NewWithFile(fileFromLines("hello world"))
	p.CursorX = 11
	p.DeleteCharOrWord(true)
	if p.File.Lines[0].String() != "hello " {
		t.Fatalf("got %q, want \"hello \"", p.File.Lines[0].String())
	}
}

func TestCopyCutPasteSingleLine(t *testing.T) {
	p := NewWithFile(fileFromLines("hello world"))
	clip := clipboard.New()
	p.MarkX, p.MarkY, p.MarkValid = 0, 0, true
	p.CursorX, p.CursorY = 5, 0

	p.Copy(clip)
	if string(clip.Bytes()) != "hello" {
		t.Fatalf("clipboard = %q, want hello", clip.Bytes())
	}

	p.Cut(clip)
	if p.File.Lines[0].String() != " world" {
		t.Fatalf("after cut: %q, want \" world\"", p.File.Lines[0].String())
	}

	p.CursorX = 0
	p.Paste(clip)
	if p.File.Lines[0].String() != "hello world" {
		t.Fatalf("after paste: %q, want \"hello world\"", p.File.Lines[0].String())
	}
}

func TestCopyCutMultiLine(t *testing.T) {
	p := NewWithFile(fileFromLines("one", "two", "three"))
	clip := clipboard.New()
	p.MarkX, p.MarkY, p.MarkValid = 1, 0, true
	p.CursorX, p.CursorY = 2, 2

	p.Copy(clip)
	if string(clip.Bytes()) != "ne\ntwo\nth" {
		t.Fatalf("clipboard = %q", clip.Bytes())
	}

	p.Cut(clip)
	if len(p.File.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(p.File.Lines))
	}
	if p.File.Lines[0].String() != "oree" {
		t.Fatalf("got %q, want \"oree\"", p.File.Lines[0].String())
	}
}

func TestPasteMultiLine(t *testing.T) {
	p := NewWithFile(fileFromLines("XY"))
	clip := clipboard.New()
	clip.Set([]byte("A\nB"))
	p.CursorX = 1
	p.Paste(clip)
	if len(p.File.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(p.File.Lines))
	}
	if p.File.Lines[0].String() != "XA" || p.File.Lines[1].String() != "BY" {
		t.Fatalf("got %q / %q", p.File.Lines[0].String(), p.File.Lines[1].String())
	}
}

func TestChangeFileSavesAndRestoresViewState(t *testing.T) {
	p := NewWithFile(fileFromLines("a"))
	first := p.File
	p.CursorX, p.CursorY = 1, 0

	second := fileFromLines("b", "c")
	p.ChangeFile(second)
	if p.CursorX != 0 || p.CursorY != 0 {
		t.Fatalf("new file should start at (0,0), got (%d,%d)", p.CursorX, p.CursorY)
	}

	p.ChangeFile(first)
	if p.CursorX != 1 || p.CursorY != 0 {
		t.Fatalf("returning to first file should restore (1,0), got (%d,%d)", p.CursorX, p.CursorY)
	}
}

func TestDisplayErrorAndClear(t *testing.T) {
	p := New()
	p.DisplayError("can not open file `%s`", "x.txt")
	if !p.ErrorPresent || p.ErrorMessage != "can not open file `x.txt`" {
		t.Fatalf("got present=%v message=%q", p.ErrorPresent, p.ErrorMessage)
	}
	p.ClearError()
	if p.ErrorPresent {
		t.Fatal("ClearError should clear ErrorPresent")
	}
}

func TestEnterAndCancelFindRestoresCursor(t *testing.T) {
	p := NewWithFile(fileFromLines("abc"))
	p.CursorX = 2
	p.EnterMinibar(0)
	p.CursorX = 0
	p.Matches = []find.Match{{X: 0, Y: 0}}
	p.CancelFind()
	if p.CursorX != 2 {
		t.Fatalf("CursorX = %d, want 2 (restored)", p.CursorX)
	}
	if p.Matches != nil {
		t.Fatal("CancelFind should clear matches")
	}
	if p.MinibarActive {
		t.Fatal("CancelFind should exit minibar mode")
	}
}

func TestHandleKeyCtrlFEntersFindMode(t *testing.T) {
	p := NewWithFile(fileFromLines("needle in a haystack"))
	if !p.HandleKey(input.KeyCtrlF, clipboard.New(), 80, 24) {
		t.Fatal("ctrl-F should be handled locally")
	}
	if !p.MinibarActive || p.MinibarMode != input.MinibarModeFind {
		t.Fatalf("expected find mode active, got active=%v mode=%v", p.MinibarActive, p.MinibarMode)
	}
}

func TestHandleMinibarKeyInsertTypesAndFinds(t *testing.T) {
	p := NewWithFile(fileFromLines("needle in a haystack", "another needle"))
	p.EnterMinibar(input.MinibarModeFind)

	for _, b := range []byte("needle") {
		if !p.HandleMinibarKey(input.KeyCode(b), 80, 24, nil) {
			t.Fatalf("printable key %q should be handled", b)
		}
	}

	if string(p.MinibarData) != "needle" {
		t.Fatalf("MinibarData = %q, want \"needle\"", p.MinibarData)
	}
	if len(p.Matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(p.Matches))
	}
	if p.CursorX != 0 || p.CursorY != 0 {
		t.Fatalf("cursor should jump to closest match, got (%d,%d)", p.CursorX, p.CursorY)
	}
}

func TestHandleMinibarKeyDeleteRefinds(t *testing.T) {
	p := NewWithFile(fileFromLines("aa ab ac"))
	p.EnterMinibar(input.MinibarModeFind)
	p.MinibarData = []byte("ab")
	p.MinibarCursor = 2
	p.FindInFile(24, nil)
	if len(p.Matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(p.Matches))
	}

	if !p.HandleMinibarKey(input.KeyDelete, 80, 24, nil) {
		t.Fatal("delete should be handled")
	}
	if string(p.MinibarData) != "a" {
		t.Fatalf("MinibarData = %q, want \"a\"", p.MinibarData)
	}
	if len(p.Matches) != 4 {
		t.Fatalf("got %d matches after refind, want 4", len(p.Matches))
	}
}

func TestHandleMinibarKeyUpDownCyclesMatches(t *testing.T) {
	p := NewWithFile(fileFromLines("x", "x", "x"))
	p.EnterMinibar(input.MinibarModeFind)
	p.MinibarData = []byte("x")
	p.FindInFile(24, nil)
	if p.MatchIndex != 0 {
		t.Fatalf("MatchIndex = %d, want 0", p.MatchIndex)
	}

	p.HandleMinibarKey(input.KeyDown, 80, 24, nil)
	if p.MatchIndex != 1 || p.CursorY != 1 {
		t.Fatalf("after down: index=%d cursorY=%d, want 1/1", p.MatchIndex, p.CursorY)
	}

	p.HandleMinibarKey(input.KeyUp, 80, 24, nil)
	p.HandleMinibarKey(input.KeyUp, 80, 24, nil)
	if p.MatchIndex != 2 || p.CursorY != 2 {
		t.Fatalf("after wrapping up: index=%d cursorY=%d, want 2/2", p.MatchIndex, p.CursorY)
	}
}

func TestHandleMinibarKeyEscapeRestoresCursor(t *testing.T) {
	p := NewWithFile(fileFromLines("needle"))
	p.CursorX = 3
	p.EnterMinibar(input.MinibarModeFind)
	p.MinibarData = []byte("needle")
	p.FindInFile(24, nil)

	if !p.HandleMinibarKey(input.KeyEscape, 80, 24, nil) {
		t.Fatal("escape should be handled")
	}
	if p.CursorX != 3 {
		t.Fatalf("CursorX = %d, want 3 (restored)", p.CursorX)
	}
	if p.MinibarActive {
		t.Fatal("escape should exit minibar mode")
	}
}

func TestHandleKeySaveDisplaysErrorOnFailure(t *testing.T) {
	p := NewWithFile(fileFromLines("a"))
	p.File.Path = "/nonexistent-dir/does-not-exist/x.c"
	if !p.HandleKey(input.UserKeySave, clipboard.New(), 80, 24) {
		t.Fatal("ctrl-S should be handled locally")
	}
	if !p.ErrorPresent {
		t.Fatal("expected an error after a failed save")
	}
}

func TestHandleMinibarKeyEnterIsNotHandledLocally(t *testing.T) {
	p := NewWithFile(fileFromLines("a"))
	p.EnterMinibar(input.MinibarModeCommand)
	if p.HandleMinibarKey(input.KeyEnter, 80, 24, nil) {
		t.Fatal("Enter requires store/region access and must be left to the editor package")
	}
}
