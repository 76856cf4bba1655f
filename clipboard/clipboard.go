// Package clipboard implements the editor's single process-wide byte
// buffer used by block copy/cut/paste.
//
// Grounded on original_source/editor.c's static String clipboard and its
// copy_block/cut/paste functions (spec.md §3 "Clipboard").
package clipboard

import "github.com/garaekz/ved/internal/varray"

// Clipboard holds the last copied or cut span of bytes, newline-separated
// across lines per spec.md §4.3's block-copy rule.
type Clipboard struct {
	data *varray.Array[byte]
}

// New creates an empty clipboard.
func New() *Clipboard {
	return &Clipboard{data: varray.New[byte](64)}
}

// Set overwrites the clipboard contents.
func (c *Clipboard) Set(b []byte) {
	c.data.Clear()
	c.data.AppendMulti(b)
}

// Append adds bytes to the end of the clipboard without clearing it
// first, used while accumulating a multi-line block copy one line at a
// time.
func (c *Clipboard) Append(b []byte) {
	c.data.AppendMulti(b)
}

// AppendByte adds a single byte, used to insert the '\n' separator
// between copied lines.
func (c *Clipboard) AppendByte(b byte) {
	c.data.Append(b)
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.data.Clear()
}

// Bytes returns the clipboard's current contents. The returned slice
// aliases the clipboard's backing array and must not be retained past
// the next mutating call.
func (c *Clipboard) Bytes() []byte {
	return c.data.Items()
}

// Len returns the number of bytes currently held.
func (c *Clipboard) Len() int {
	return c.data.Len()
}
