package buffer

import (
	"bytes"
	"errors"
	"os"

	"github.com/google/uuid"
)

// ErrMalformedLineEnding is returned by Open when a file contains a bare
// \r not immediately followed by \n, per spec.md §6/§7.
var ErrMalformedLineEnding = errors.New("buffer: \\r not immediately followed by \\n")

// Handle is an opaque, stable reference to a File in a Store. Using a
// uuid rather than a pointer or slice index lets the per-pane FileState
// cache (pane.Pane.FileStates) key on value identity even if the Store's
// backing slice is reorganized. Grounded on spec.md §9's "make the file
// list an arena too" recommendation.
type Handle uuid.UUID

// NilHandle is the zero handle, used by panes with no open file.
var NilHandle = Handle(uuid.Nil)

// File is a path plus an ordered list of lines, shared by reference
// across every pane that views it.
type File struct {
	Handle    Handle
	Path      string
	Lines     []*Line
	Highlight string // language key into a highlight.RuleSet, "" = none
	Saved     bool
	Redraw    bool // forces full repaint of every pane showing this file
}

// NewEmptyFile creates a one-line, unsaved file named path.
func NewEmptyFile(path string) *File {
	return &File{
		Handle: Handle(uuid.New()),
		Path:   path,
		Lines:  []*Line{NewLine()},
		Saved:  false,
		Redraw: true,
	}
}

// splitLines splits content on '\n', validating that any '\r' is
// immediately followed by '\n' (spec.md §6). Returns ErrMalformedLineEnding
// on the first violation, with no partial load (spec.md §7).
func splitLines(content []byte) ([]*Line, error) {
	if bytes.IndexByte(content, '\r') >= 0 {
		for i, b := range content {
			if b == '\r' && (i+1 >= len(content) || content[i+1] != '\n') {
				return nil, ErrMalformedLineEnding
			}
		}
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	parts := bytes.Split(content, []byte("\n"))
	lines := make([]*Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLineFromBytes(p)
	}
	return lines, nil
}

// Open reads path and parses it into a File. The in-memory ordering is
// line-major; lines are split on '\n' tolerating a preceding '\r'.
func Open(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := splitLines(content)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []*Line{NewLine()}
	}
	return &File{
		Handle: Handle(uuid.New()),
		Path:   path,
		Lines:  lines,
		Saved:  true,
		Redraw: true,
	}, nil
}

// Save truncates and rewrites the file with CRLF line endings, creating
// it with 0666 permissions if it does not already exist, per spec.md §6.
func (f *File) Save() error {
	var buf bytes.Buffer
	for i, l := range f.Lines {
		buf.Write(l.Chars.Items())
		if i != len(f.Lines)-1 {
			buf.WriteString("\r\n")
		}
	}
	fh, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer fh.Close()
	if _, err := fh.Write(buf.Bytes()); err != nil {
		return err
	}
	f.Saved = true
	return nil
}

// MarkDirty clears Saved, as any buffer mutation must (spec.md §8
// invariant 4). It does not touch Redraw or any pane's redraw flag.
func (f *File) MarkDirty() {
	f.Saved = false
}

// Store is the process-wide owning arena of open files. Per spec.md §9,
// this core never frees a file when its last pane closes — Close exists
// as the documented future hook, not wired into editor's dispatch path.
type Store struct {
	files map[Handle]*File
	order []Handle
}

// NewStore creates an empty file arena.
func NewStore() *Store {
	return &Store{files: make(map[Handle]*File)}
}

// Add registers a file in the arena.
func (s *Store) Add(f *File) {
	if _, exists := s.files[f.Handle]; !exists {
		s.order = append(s.order, f.Handle)
	}
	s.files[f.Handle] = f
}

// Get looks up a file by handle.
func (s *Store) Get(h Handle) (*File, bool) {
	f, ok := s.files[h]
	return f, ok
}

// FindByPath returns an already-open file with the given path, if any.
func (s *Store) FindByPath(path string) (*File, bool) {
	for _, h := range s.order {
		if f := s.files[h]; f.Path == path {
			return f, true
		}
	}
	return nil, false
}

// Close is the documented-but-unused deallocation hook (spec.md §9 open
// question: file lifetime on pane close). It is never called by editor's
// dispatch path; files live for process lifetime, matching the source.
func (s *Store) Close(h Handle) {
	delete(s.files, h)
	for i, oh := range s.order {
		if oh == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of open files.
func (s *Store) Len() int { return len(s.order) }
