// Package editor is the top-level orchestrator: it owns the region tree,
// the open-file arena, the theme and highlight tables, and the main run
// loop, and dispatches every key the pane-local handlers in package pane
// deliberately do not own — minibar entry, focus/resize/close/swap, and
// the minibar Enter action, which needs the file store and region tree a
// lone pane has no access to.
//
// Grounded on original_source/editor.c's editor_handle_keypress/
// handle_minibar_enter/handle_command/update event-loop shape (spec.md
// §4.1, §4.6), and on the teacher's garaekz-tfx/runfx/mainloop.go Run
// method for goroutine supervision of the key reader and signal handler.
package editor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/garaekz/ved/buffer"
	"github.com/garaekz/ved/clipboard"
	"github.com/garaekz/ved/command"
	"github.com/garaekz/ved/highlight"
	"github.com/garaekz/ved/input"
	"github.com/garaekz/ved/logx"
	"github.com/garaekz/ved/pane"
	"github.com/garaekz/ved/region"
	"github.com/garaekz/ved/render"
	"github.com/garaekz/ved/terminal"
	"github.com/garaekz/ved/theme"
	"github.com/garaekz/ved/writer"
)

// Editor is the process-wide state: the file arena, the theme/highlight
// tables, the region tree of panes, and the rendering/IO surfaces driving
// them, matching the set of file-scope globals original_source/editor.c
// keeps (files, windows, master_region, current_theme, clipboard).
type Editor struct {
	Files  *buffer.Store
	Themes *theme.Table
	Rules  *highlight.RuleSet
	Clip   *clipboard.Clipboard
	Log    *logx.Logger

	Tree    *region.Tree
	Focused region.Handle

	Engine *render.Engine
	Out    *writer.TerminalWriter
	In     *input.Reader
	Signal *terminal.SignalHandler

	Width, Height int
}

// New constructs an editor with a single, fileless pane filling a
// width x height terminal, matching editor_init's single master_region
// allocation. cfg supplies the theme/highlight tables and the logger;
// see DefaultConfig and NewConfig.
func New(out *writer.TerminalWriter, in *input.Reader, cfg Config, width, height int) *Editor {
	p := pane.New()
	p.Log = cfg.Logger
	p.Rules = cfg.Rules
	rect := region.Rect{X: 0, Y: 0, Width: width, Height: height}
	tree := region.New(rect, p)

	engine := render.NewEngine(cfg.Themes)
	engine.ThemeIndex = cfg.ThemeIndex

	return &Editor{
		Files:   buffer.NewStore(),
		Themes:  cfg.Themes,
		Rules:   cfg.Rules,
		Clip:    clipboard.New(),
		Log:     cfg.Logger,
		Tree:    tree,
		Focused: tree.Root(),
		Engine:  engine,
		Out:     out,
		In:      in,
		Signal:  terminal.NewSignalHandler(),
		Width:   width,
		Height:  height,
	}
}

// OpenInitialFile opens path into the focused pane at startup, the way
// cmd/ved's optional file argument works. Reports the same error
// open_file's caller in main() would.
func (e *Editor) OpenInitialFile(path string) error {
	f, err := e.openFile(path)
	if err != nil {
		return err
	}
	e.focusedPane().ChangeFile(f)
	return nil
}

func (e *Editor) focusedPane() *pane.Pane {
	return e.Tree.Window(e.Focused).(*pane.Pane)
}

// openFile returns the already-open file at path if one exists, else
// reads it from disk and registers it in the arena, per open_file.
// Neither branch highlights an already-open file a second time.
func (e *Editor) openFile(path string) (*buffer.File, error) {
	if f, ok := e.Files.FindByPath(path); ok {
		e.Log.Debug("reusing already-open file " + path)
		return f, nil
	}
	f, err := buffer.Open(path)
	if err != nil {
		e.Log.Warn("open file " + path + " failed: " + err.Error())
		e.Log.FileBadge(path, false)
		return nil, err
	}
	e.Files.Add(f)
	if lang := e.Rules.ForPath(path); lang != nil {
		f.Highlight = lang.Name
		highlight.HighlightFile(f, lang)
	}
	e.Log.HighlightBadge(f.Highlight)
	e.Log.FileBadge(path, true)
	e.Log.Debug("opened file " + path)
	return f, nil
}

// createFile always allocates a fresh, unsaved file, per create_file.
func (e *Editor) createFile(path string) *buffer.File {
	f := buffer.NewEmptyFile(path)
	e.Files.Add(f)
	if lang := e.Rules.ForPath(path); lang != nil {
		f.Highlight = lang.Name
		highlight.HighlightFile(f, lang)
	}
	e.Log.HighlightBadge(f.Highlight)
	e.Log.Debug("created file " + path)
	return f
}

// activeSize returns h's active editing area, mirroring render's private
// activeSize/get_active_size: the region's rectangle minus the left
// gutter and the one reserved status row.
func (e *Editor) activeSize(h region.Handle) (width, height int) {
	rect := e.Tree.Rect(h)
	p := e.Tree.Window(h).(*pane.Pane)
	height = rect.Height - render.MinibarCount
	if height < 0 {
		height = 0
	}
	return rect.Width - p.LeftPadding(rect.X == 0), height
}

// markAllDirty flags every pane in the tree for a full repaint. Used
// after any operation that reshapes the region tree (resize, split,
// close, swap) or recolors every pane (a theme change): region.Tree does
// not expose per-subtree leaf enumeration, so a tree-wide mark is the
// simplest faithful stand-in for resize_child_regions's "every window it
// recurses into" behavior — it costs a few redundant line redraws, never
// a missed one.
func (e *Editor) markAllDirty() {
	for _, h := range e.Tree.Leaves() {
		e.Tree.Window(h).(*pane.Pane).Redraw = true
	}
}

// findLeafByWindow returns the leaf currently holding w. Needed after
// Tree.Close, which can make the handle a caller resolved before the
// call stale: when the absorbed sibling was itself a leaf, its window
// migrates onto the parent's handle rather than keeping its own.
func (e *Editor) findLeafByWindow(w interface{}) region.Handle {
	for _, h := range e.Tree.Leaves() {
		if e.Tree.Window(h) == w {
			return h
		}
	}
	return e.Tree.Root()
}

// focusNext moves focus to the next leaf in tree order, per focus_next.
func (e *Editor) focusNext() {
	e.Focused = e.Tree.Next(e.Focused)
}

// focusPrevious moves focus to the preceding leaf, per focus_previous.
func (e *Editor) focusPrevious() {
	e.Focused = e.Tree.Previous(e.Focused)
}

// closeFocused removes the focused pane from the tree, a no-op at the
// root (the last pane can never close), per remove_window. Focus moves
// to the pane that would have been next, resolved before the tree
// mutates, matching remove_window's focus_next() call before it frees
// anything.
func (e *Editor) closeFocused() {
	nextWindow := e.Tree.Window(e.Tree.Next(e.Focused))

	if e.Tree.Close(e.Focused) == region.NoHandle {
		e.Log.Debug("close ignored: sole root pane")
		return
	}

	e.Focused = e.findLeafByWindow(nextWindow)
	e.markAllDirty()
	e.Log.Debug("closed pane, region tree reflowed")
}

// split divides the focused pane into two, stacked top/bottom when
// stacked is true or side by side otherwise, per split_window. Focus
// stays on the pane that was split — split_window's return value (the
// new sibling) is discarded by its only caller, handle_command — but
// Tree.Split relocates the surviving window onto a freshly allocated
// handle rather than keeping it at h, so e.Focused has to be re-resolved
// by window identity the same way closeFocused re-resolves after Close.
func (e *Editor) split(stacked bool) {
	current := e.Tree.Window(e.Focused)
	sibling := pane.New()
	sibling.Log = e.Log
	sibling.Rules = e.Rules
	e.Tree.Split(e.Focused, stacked, sibling)
	e.Focused = e.findLeafByWindow(current)
	e.markAllDirty()
	e.Log.Debug("split pane")
}

// handleCommand parses and runs a command-mode minibar line, per
// handle_command.
func (e *Editor) handleCommand(p *pane.Pane) {
	cmd, err := command.Parse(p.MinibarData)
	if err != nil {
		p.DisplayError("%s", err)
		return
	}

	switch cmd.Kind {
	case command.KindSplitVertical:
		e.split(true)
	case command.KindSplitHorizontal:
		e.split(false)
	case command.KindTheme:
		if idx := e.Themes.Resolve(cmd.ThemeArg); idx != e.Engine.ThemeIndex {
			e.Engine.ThemeIndex = idx
			e.markAllDirty()
			e.Log.Debug("switched theme to " + e.Themes.At(idx).Name)
		}
	case command.KindClose:
		e.closeFocused()
	}
}

// handleMinibarEnter runs the action the active minibar prompt was
// collecting text for, then always exits the minibar — even the error
// paths leave the prompt, matching handle_minibar_enter/exit_minibar_mode
// always being called back to back by update()'s KeyCodeEnter case.
func (e *Editor) handleMinibarEnter(p *pane.Pane) {
	switch p.MinibarMode {
	case input.MinibarModeOpen:
		path := string(p.MinibarData)
		if f, err := e.openFile(path); err == nil {
			p.ChangeFile(f)
		} else {
			p.DisplayError("can not open file `%s`", path)
		}
	case input.MinibarModeNew:
		p.ChangeFile(e.createFile(string(p.MinibarData)))
	case input.MinibarModeCommand:
		e.handleCommand(p)
	case input.MinibarModeFind:
		p.Matches = nil
		p.Redraw = true
	}
	p.ExitMinibar()
}

// HandleKey applies the full keymap to the focused pane. It owns every
// key pane.HandleKey and pane.HandleMinibarKey do not: minibar entry
// (ctrl-G/N/R), focus-next/previous (shift-left/right), the region-tree
// keys (ctrl-up/down/left/right: resize+/-, close, swap), and minibar
// Enter, dispatching anything else to the focused pane.
func (e *Editor) HandleKey(k input.KeyCode) {
	p := e.focusedPane()
	width, height := e.activeSize(e.Focused)

	if p.MinibarActive {
		if k == input.KeyEnter {
			e.handleMinibarEnter(p)
			return
		}
		p.HandleMinibarKey(k, width, height, e.In)
		return
	}

	switch k {
	case input.UserKeyOpen:
		p.EnterMinibar(input.MinibarModeOpen)
		return
	case input.UserKeyNew:
		p.EnterMinibar(input.MinibarModeNew)
		return
	case input.UserKeyCommand:
		p.EnterMinibar(input.MinibarModeCommand)
		return
	case input.UserKeyFocusNext:
		e.focusNext()
		return
	case input.UserKeyFocusPrevious:
		e.focusPrevious()
		return
	}

	if p.File != nil {
		switch k {
		case input.KeyCtrlUp:
			e.Tree.Resize(e.Focused, 1)
			e.markAllDirty()
			e.Log.Debug("grew focused pane")
			return
		case input.KeyCtrlDown:
			e.Tree.Resize(e.Focused, -1)
			e.markAllDirty()
			e.Log.Debug("shrank focused pane")
			return
		case input.KeyCtrlLeft:
			e.closeFocused()
			return
		case input.KeyCtrlRight:
			e.Tree.Swap(e.Focused)
			e.markAllDirty()
			e.Log.Debug("swapped pane with its sibling")
			return
		}
	}

	p.HandleKey(k, e.Clip, width, height)
}

// Resize reflows the whole tree onto a new terminal size and forces a
// full repaint, per resize_master_region's get_terminal_size +
// resize_child_regions pairing.
func (e *Editor) Resize(width, height int) {
	e.Width, e.Height = width, height
	e.Tree.ResizeRoot(region.Rect{X: 0, Y: 0, Width: width, Height: height})
	e.markAllDirty()
}

// renderAndFlush builds one frame and writes it, matching render()'s
// build-the-whole-buffer-then-write-once discipline (spec.md §4.2's "no
// direct writes during a frame" rule).
func (e *Editor) renderAndFlush() error {
	frame, _ := e.Engine.Render(e.Tree, e.Focused, e.Height)
	_, err := e.Out.Write(frame)
	return err
}

// Run drives the editor until ctx is canceled, ctrl-Q is pressed, or the
// key reader errors. The key-read loop and the OS signal listener run as
// sibling goroutines supervised by an errgroup, so either one failing
// cancels the other, following the teacher's runfx/mainloop.go Run
// goroutine-supervision shape.
func (e *Editor) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.Signal.OnResize(func() {
		if w, h, err := e.Out.GetSize(); err == nil {
			e.Resize(w, h)
		}
	})
	e.Signal.OnStop(cancel)

	if err := e.renderAndFlush(); err != nil {
		return err
	}

	e.Log.Debug("editor run loop starting")
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e.Signal.Listen(ctx)
		return nil
	})

	g.Go(func() error {
		for {
			k, err := e.In.Next(ctx)
			if err != nil {
				return err
			}
			if k == input.UserKeyExit {
				cancel()
				return nil
			}
			if k == input.KeyUnknown || k == input.KeyNone {
				continue
			}

			e.HandleKey(k)

			if err := e.renderAndFlush(); err != nil {
				return err
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		e.Log.Warn("editor run loop exited with error: " + err.Error())
		return err
	}
	e.Log.Debug("editor run loop exiting")
	return nil
}
