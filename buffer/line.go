// Package buffer implements the text buffer model: File as an ordered
// sequence of Line, shared by reference across multiple panes.
//
// Grounded on original_source/editor.c's struct Line / struct File and on
// spec.md §3 and §6 (line model, open/save formats).
package buffer

import "github.com/garaekz/ved/internal/varray"

// ColorClass is the semantic color bucket assigned to one byte of a line
// by the syntax highlighter. Kept as a named small-index type per spec
// §9's "color-class indexing" note rather than a bare byte; being a
// uint8, it holds at most 256 classes.
type ColorClass uint8

const (
	ColorEditorForeground ColorClass = iota
	ColorMatchForeground
	ColorSelectedMatchForeground
	ColorComment
	ColorMultilineComment
	ColorKeyword
	ColorString
	ColorChar
	ColorNumber
)

// Line is one line of text: bytes plus a parallel color-class per byte and
// a redraw flag set by any mutation. Invariant: len(Colors) >= len(Chars).
type Line struct {
	Chars   *varray.Array[byte]
	Colors  *varray.Array[ColorClass]
	Redraw  bool
}

// NewLine creates an empty line.
func NewLine() *Line {
	return &Line{
		Chars:  varray.New[byte](16),
		Colors: varray.New[ColorClass](16),
	}
}

// NewLineFromBytes creates a line from existing content, coloring every
// byte as default foreground.
func NewLineFromBytes(b []byte) *Line {
	l := &Line{
		Chars:  varray.FromSlice(append([]byte(nil), b...)),
		Colors: varray.New[ColorClass](len(b)),
	}
	for range b {
		l.Colors.Append(ColorEditorForeground)
	}
	return l
}

// Len returns the number of bytes on the line.
func (l *Line) Len() int { return l.Chars.Len() }

// InsertByte inserts a single byte at column x and marks the line dirty.
func (l *Line) InsertByte(b byte, x int) {
	l.Chars.InsertAt(b, x)
	l.Colors.InsertAt(ColorEditorForeground, x)
	l.Redraw = true
}

// InsertBytes inserts bytes at column x.
func (l *Line) InsertBytes(b []byte, x int) {
	if len(b) == 0 {
		return
	}
	l.Chars.InsertMulti(b, x)
	colors := make([]ColorClass, len(b))
	l.Colors.InsertMulti(colors, x)
	l.Redraw = true
}

// DeleteRange removes [x, x+n) from the line.
func (l *Line) DeleteRange(x, n int) {
	if n <= 0 {
		return
	}
	l.Chars.RemoveMulti(x, n)
	l.Colors.RemoveMulti(x, n)
	l.Redraw = true
}

// Split divides the line at column x, returning a new Line holding the
// tail [x:]. The receiver is truncated to [:x].
func (l *Line) Split(x int) *Line {
	tailChars := append([]byte(nil), l.Chars.Items()[x:]...)
	tail := NewLineFromBytes(tailChars)
	l.Chars.Truncate(x)
	l.Colors.Truncate(x)
	l.Redraw = true
	return tail
}

// Merge appends other's bytes to the receiver.
func (l *Line) Merge(other *Line) {
	l.InsertBytes(other.Chars.Items(), l.Len())
}

// LeadingSpaces returns the count of leading space bytes.
func (l *Line) LeadingSpaces() int {
	chars := l.Chars.Items()
	n := 0
	for n < len(chars) && chars[n] == ' ' {
		n++
	}
	return n
}

// String returns the line content as a string (for tests/debugging).
func (l *Line) String() string {
	return string(l.Chars.Items())
}

// Bytes returns the line's raw byte content, satisfying find.Line.
func (l *Line) Bytes() []byte {
	return l.Chars.Items()
}
