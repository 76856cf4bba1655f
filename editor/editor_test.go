package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/garaekz/ved/buffer"
	"github.com/garaekz/ved/command"
	"github.com/garaekz/ved/input"
	"github.com/garaekz/ved/pane"
	"github.com/garaekz/ved/writer"
)

func newTestEditor() *Editor {
	out := writer.NewTerminalWriter(&bytes.Buffer{}, writer.TerminalOptions{})
	in := input.NewReader(bytes.NewReader(nil))
	return New(out, in, NewConfig(), 80, 24)
}

func (e *Editor) pane() *pane.Pane { return e.focusedPane() }

func TestNewStartsWithSingleFilelessPaneAtRoot(t *testing.T) {
	e := newTestEditor()
	if !e.Tree.IsLeaf(e.Focused) {
		t.Fatal("fresh editor's focused handle should be a leaf")
	}
	if e.pane().File != nil {
		t.Fatal("fresh editor's pane should have no open file")
	}
}

func TestHandleKeyOpenEntersMinibarOpenMode(t *testing.T) {
	e := newTestEditor()
	e.HandleKey(input.UserKeyOpen)
	if !e.pane().MinibarActive || e.pane().MinibarMode != input.MinibarModeOpen {
		t.Fatal("ctrl-G should enter open-mode minibar")
	}
}

func TestHandleKeyNewThenEnterCreatesAndSwitchesFile(t *testing.T) {
	e := newTestEditor()
	e.HandleKey(input.UserKeyNew)
	for _, b := range []byte("scratch.c") {
		e.HandleKey(input.KeyCode(b))
	}
	e.HandleKey(input.KeyEnter)

	p := e.pane()
	if p.MinibarActive {
		t.Fatal("Enter should exit the minibar")
	}
	if p.File == nil || p.File.Path != "scratch.c" {
		t.Fatalf("expected pane to switch to the new file, got %+v", p.File)
	}
	if e.Files.Len() != 1 {
		t.Fatalf("new file should be registered in the store, got %d files", e.Files.Len())
	}
}

func TestHandleKeyOpenMissingFileDisplaysError(t *testing.T) {
	e := newTestEditor()
	e.HandleKey(input.UserKeyOpen)
	for _, b := range []byte("/no/such/file.c") {
		e.HandleKey(input.KeyCode(b))
	}
	e.HandleKey(input.KeyEnter)

	p := e.pane()
	if !p.ErrorPresent {
		t.Fatal("opening a missing file should display an error")
	}
	if p.File != nil {
		t.Fatal("pane should still have no file after a failed open")
	}
}

func TestHandleKeyOpenReusesAlreadyOpenFile(t *testing.T) {
	e := newTestEditor()
	dir := t.TempDir()
	path := filepath.Join(dir, "x.c")
	if err := os.WriteFile(path, []byte("int x;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := e.openFile(path)
	if err != nil {
		t.Fatal(err)
	}
	e.Files.Add(f)

	again, err := e.openFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if again != f {
		t.Fatal("opening an already-open path should return the same file")
	}
	if e.Files.Len() != 1 {
		t.Fatalf("reopening should not register a duplicate, got %d files", e.Files.Len())
	}
}

func enterCommand(e *Editor, text string) {
	e.HandleKey(input.UserKeyCommand)
	for _, b := range []byte(text) {
		e.HandleKey(input.KeyCode(b))
	}
	e.HandleKey(input.KeyEnter)
}

func TestCommandSplitHorizontalAddsLeafKeepsFocus(t *testing.T) {
	e := newTestEditor()
	beforeWindow := e.Tree.Window(e.Focused)
	enterCommand(e, "split |")

	leaves := e.Tree.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves after split, want 2", len(leaves))
	}
	if e.Tree.Window(e.Focused) != beforeWindow {
		t.Fatal("split should not move focus off the pane that issued it, matching split_window's discarded return value")
	}
}

func TestCommandSplitBadSyntaxDisplaysError(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "split sideways")
	if !e.pane().ErrorPresent {
		t.Fatal("a malformed split command should display an error")
	}
}

func TestCommandUnknownDisplaysError(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "bogus")
	if !e.pane().ErrorPresent {
		t.Fatal("an unrecognized command should display an error")
	}
}

func TestCommandCloseOnSoleRootPaneIsNoOp(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "close")
	if len(e.Tree.Leaves()) != 1 {
		t.Fatal("closing the only pane should be a no-op")
	}
}

func TestCommandCloseAfterSplitReturnsToOnePane(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "split -")
	if len(e.Tree.Leaves()) != 2 {
		t.Fatal("expected two panes after splitting")
	}

	enterCommand(e, "close")
	leaves := e.Tree.Leaves()
	if len(leaves) != 1 {
		t.Fatalf("expected one pane after closing, got %d", len(leaves))
	}
	if e.Focused != leaves[0] {
		t.Fatal("focus should land on the surviving pane")
	}
}

func TestCommandThemeSwitchesEngineIndexAndRedraws(t *testing.T) {
	e := newTestEditor()
	if e.Engine.ThemeIndex != 0 {
		t.Fatalf("engine should start at theme 0, got %d", e.Engine.ThemeIndex)
	}
	enterCommand(e, "theme blow")

	idx := e.Themes.Resolve("blow")
	if e.Engine.ThemeIndex != idx {
		t.Fatalf("theme command should resolve and apply index %d, got %d", idx, e.Engine.ThemeIndex)
	}
	if !e.pane().Redraw {
		t.Fatal("an actual theme change should mark the pane for redraw")
	}
}

func TestCommandThemeNoChangeSkipsRedraw(t *testing.T) {
	e := newTestEditor()
	e.pane().Redraw = false
	enterCommand(e, "theme default")

	if e.Engine.ThemeIndex != 0 {
		t.Fatal("resolving the current theme by name should not change the index")
	}
	if e.pane().Redraw {
		t.Fatal("re-selecting the current theme should not force a redraw")
	}
}

func TestFocusNextAndPreviousCycleBetweenPanes(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "split |")
	leaves := e.Tree.Leaves()

	e.HandleKey(input.UserKeyFocusNext)
	if e.Focused != leaves[1] {
		t.Fatalf("focus-next should move to the sibling, got handle %v", e.Focused)
	}
	e.HandleKey(input.UserKeyFocusPrevious)
	if e.Focused != leaves[0] {
		t.Fatal("focus-previous should move back")
	}
}

func TestCtrlLeftClosesPaneOnlyWhenFileOpen(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "split |")
	leaves := e.Tree.Leaves()

	// No file open in the focused pane: ctrl-left must fall through
	// without touching the tree, since the original gates the whole
	// resize/close/swap switch on window->file.
	e.HandleKey(input.KeyCtrlLeft)
	if len(e.Tree.Leaves()) != 2 {
		t.Fatal("ctrl-left with no file open should not close the pane")
	}

	e.pane().ChangeFile(buffer.NewEmptyFile("a.c"))
	e.HandleKey(input.KeyCtrlLeft)
	if len(e.Tree.Leaves()) != 1 {
		t.Fatal("ctrl-left with a file open should close the pane")
	}
	_ = leaves
}

func TestCtrlRightSwapsWindows(t *testing.T) {
	e := newTestEditor()
	enterCommand(e, "split |")
	leaves := e.Tree.Leaves()
	before0, before1 := e.Tree.Window(leaves[0]), e.Tree.Window(leaves[1])

	e.pane().ChangeFile(buffer.NewEmptyFile("a.c"))
	e.HandleKey(input.KeyCtrlRight)

	after := e.Tree.Leaves()
	if e.Tree.Window(after[0]) != before1 || e.Tree.Window(after[1]) != before0 {
		t.Fatal("ctrl-right should swap the split's two panes")
	}
}

func TestFindEnterClearsMatchesAndExitsMinibar(t *testing.T) {
	e := newTestEditor()
	e.pane().ChangeFile(buffer.NewEmptyFile("a.c"))
	e.HandleKey(input.KeyCtrlF)
	if !e.pane().MinibarActive {
		t.Fatal("ctrl-F should enter find mode")
	}

	e.HandleKey(input.KeyEnter)
	if e.pane().MinibarActive {
		t.Fatal("Enter should exit find mode")
	}
	if e.pane().Matches != nil {
		t.Fatal("Enter in find mode should clear matches")
	}
}

func TestHandleCommandKindUnknownOnBlankLine(t *testing.T) {
	_, err := command.Parse(nil)
	if err == nil {
		t.Fatal("parsing an empty command line should fail")
	}
}

