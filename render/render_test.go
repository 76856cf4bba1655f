package render

import (
	"bytes"
	"testing"

	"github.com/garaekz/ved/buffer"
	"github.com/garaekz/ved/find"
	"github.com/garaekz/ved/pane"
	"github.com/garaekz/ved/region"
	"github.com/garaekz/ved/theme"
)

func fileFromLines(lines ...string) *buffer.File {
	f := buffer.NewEmptyFile("x.c")
	f.Lines = nil
	for _, l := range lines {
		f.Lines = append(f.Lines, buffer.NewLineFromBytes([]byte(l)))
	}
	f.Redraw = false
	return f
}

func singlePaneTree(p *pane.Pane, rect region.Rect) (*region.Tree, region.Handle) {
	tree := region.New(rect, p)
	return tree, tree.Root()
}

func TestMarkForRedrawWholePaneOnFileDirty(t *testing.T) {
	f := fileFromLines("a", "b", "c")
	f.Redraw = true
	p := pane.NewWithFile(f)
	tree, h := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 24})

	dirty := MarkForRedraw(tree, 24)

	for row := 0; row < 24; row++ {
		if !dirty.Rows(row) {
			t.Fatalf("row %d should be dirty (whole region redraw)", row)
		}
	}
	if f.Redraw {
		t.Fatal("file Redraw should be cleared after MarkForRedraw")
	}
	_ = h
}

func TestMarkForRedrawSingleDirtyLine(t *testing.T) {
	f := fileFromLines("a", "b", "c")
	p := pane.NewWithFile(f)
	f.Lines[1].Redraw = true
	tree, _ := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 24})

	dirty := MarkForRedraw(tree, 24)

	if dirty.Rows(0) {
		t.Fatal("row 0 should be clean")
	}
	if !dirty.Rows(1) {
		t.Fatal("row 1 should be dirty (line 1 marked redraw)")
	}
	if f.Lines[1].Redraw {
		t.Fatal("line Redraw should be cleared after MarkForRedraw")
	}
}

func TestMarkForRedrawAlwaysMarksStatusRow(t *testing.T) {
	f := fileFromLines("a")
	p := pane.NewWithFile(f)
	tree, _ := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 5})

	dirty := MarkForRedraw(tree, 5)

	if !dirty.Rows(4) {
		t.Fatal("final row (status bar) should always be marked dirty")
	}
}

func TestRenderProducesCursorPositioningSequence(t *testing.T) {
	f := fileFromLines("hello", "world")
	p := pane.NewWithFile(f)
	p.CursorX, p.CursorY = 2, 1
	tree, h := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 24})

	e := NewEngine(theme.DefaultTable())
	out, cursor := e.Render(tree, h, 24)

	if len(out) == 0 {
		t.Fatal("expected non-empty frame")
	}
	if !bytes.Contains(out, []byte("\x1b[?25l")) || !bytes.Contains(out, []byte("\x1b[?25h")) {
		t.Fatal("frame should hide then show the cursor")
	}
	if cursor.Row != 1 {
		t.Fatalf("cursor row = %d, want 1", cursor.Row)
	}
}

func TestRenderStatusBarShowsPathAndPercent(t *testing.T) {
	f := fileFromLines("a", "b", "c", "d")
	f.Path = "main.c"
	p := pane.NewWithFile(f)
	p.CursorY = 2
	tree, h := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 10})

	e := NewEngine(theme.DefaultTable())
	var buf bytes.Buffer
	e.renderStatusBar(&buf, tree, h, p, true)

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("main.c")) {
		t.Fatalf("status bar missing path: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("50%")) {
		t.Fatalf("status bar missing percent: %q", out)
	}
}

func TestRenderStatusBarNoFile(t *testing.T) {
	p := pane.New()
	tree, h := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 10})

	e := NewEngine(theme.DefaultTable())
	var buf bytes.Buffer
	e.renderStatusBar(&buf, tree, h, p, false)

	if !bytes.Contains(buf.Bytes(), []byte("no file")) {
		t.Fatalf("status bar should read \"no file\", got %q", buf.String())
	}
}

func TestRenderStatusBarErrorSuppressesPercent(t *testing.T) {
	f := fileFromLines("a")
	p := pane.NewWithFile(f)
	p.DisplayError("boom")
	tree, h := singlePaneTree(p, region.Rect{X: 0, Y: 0, Width: 80, Height: 10})

	e := NewEngine(theme.DefaultTable())
	var buf bytes.Buffer
	e.renderStatusBar(&buf, tree, h, p, false)

	if !bytes.Contains(buf.Bytes(), []byte("error: boom")) {
		t.Fatalf("expected error message in status bar, got %q", buf.String())
	}
	if bytes.Contains(buf.Bytes(), []byte("%")) {
		t.Fatalf("error status bar should not show the percent, got %q", buf.String())
	}
}

func TestMatchAtSelectsSelectedColorsUnderCursor(t *testing.T) {
	f := fileFromLines("needle")
	p := pane.NewWithFile(f)
	p.Matches = []find.Match{{X: 0, Y: 0}}
	p.MatchLength = 6
	p.CursorX, p.CursorY = 0, 0

	covers, startsHere := matchAt(p, 0, 0)
	if !covers || !startsHere {
		t.Fatalf("expected column 0 to be a match start, got covers=%v startsHere=%v", covers, startsHere)
	}

	covers, startsHere = matchAt(p, 3, 0)
	if !covers || startsHere {
		t.Fatalf("expected column 3 to be covered but not the start, got covers=%v startsHere=%v", covers, startsHere)
	}
}

func TestClassColorMapsHighlightClasses(t *testing.T) {
	cases := map[buffer.ColorClass]theme.Role{
		buffer.ColorComment:          theme.RoleComment,
		buffer.ColorKeyword:          theme.RoleKeyword,
		buffer.ColorString:           theme.RoleString,
		buffer.ColorEditorForeground: theme.RoleEditorForeground,
	}
	for class, want := range cases {
		if got := classColor(class); got != want {
			t.Fatalf("classColor(%v) = %v, want %v", class, got, want)
		}
	}
}
