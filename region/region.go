// Package region implements the binary tiling tree that lays the terminal
// out into rectangles, one per pane.
//
// Grounded on original_source/editor.c's struct Region and its
// split_window/remove_window/swap_windows/resize_child_regions/
// get_next_region/get_previous_region functions; addressed here by dense
// integer Handles (an arena) rather than raw pointers, per spec.md §9's
// "make the region tree an arena too" recommendation.
package region

const (
	// WindowMinimumWidth is the narrowest a leaf's rectangle may become
	// on the horizontal axis.
	WindowMinimumWidth = 40
	// WindowMinimumHeight is the shortest a leaf's rectangle may become
	// on the vertical axis.
	WindowMinimumHeight = 10
)

// Handle is a dense index into a Tree's node arena.
type Handle int

// NoHandle is the zero value for an absent handle (e.g. a root's parent).
const NoHandle Handle = -1

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// node is one element of the tree's arena. A node is either a leaf
// (Window set, Child0/Child1 both NoHandle) or internal (the reverse).
type node struct {
	rect Rect

	parent Handle
	child0 Handle
	child1 Handle

	stacked bool    // true = split top/bottom, false = split left/right
	split   float64 // ratio owned by child0, in (0,1)

	window interface{} // opaque payload the tree does not interpret
	hasWin bool
}

// Tree is the editor's region arena: a single binary tree whose root
// rectangle always equals the current terminal size.
type Tree struct {
	nodes []node
	root  Handle
}

// New creates a tree with a single leaf root covering rect, owning
// payload window.
func New(rect Rect, window interface{}) *Tree {
	t := &Tree{}
	h := t.alloc(node{rect: rect, parent: NoHandle, child0: NoHandle, child1: NoHandle, window: window, hasWin: true})
	t.root = h
	return t
}

func (t *Tree) alloc(n node) Handle {
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

// Root returns the tree's root handle.
func (t *Tree) Root() Handle { return t.root }

// Rect returns h's current rectangle.
func (t *Tree) Rect(h Handle) Rect { return t.nodes[h].rect }

// Parent returns h's parent, or NoHandle at the root.
func (t *Tree) Parent(h Handle) Handle { return t.nodes[h].parent }

// IsLeaf reports whether h carries a window rather than children.
func (t *Tree) IsLeaf(h Handle) bool { return t.nodes[h].hasWin }

// Window returns the payload stored at leaf h.
func (t *Tree) Window(h Handle) interface{} { return t.nodes[h].window }

// SetWindow replaces the payload stored at leaf h.
func (t *Tree) SetWindow(h Handle, window interface{}) { t.nodes[h].window = window }

// Stacked reports whether internal node h splits top/bottom.
func (t *Tree) Stacked(h Handle) bool { return t.nodes[h].stacked }

func limit(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Split turns leaf h into an internal node: child0 keeps h's existing
// window, child1 gets newWindow, stacked selects top/bottom (true) vs
// left/right (false). Returns the new sibling's handle.
func (t *Tree) Split(h Handle, stacked bool, newWindow interface{}) Handle {
	win := t.nodes[h].window
	t.nodes[h].hasWin = false
	t.nodes[h].window = nil
	t.nodes[h].stacked = stacked
	t.nodes[h].split = 0.5

	c0 := t.alloc(node{parent: h, child0: NoHandle, child1: NoHandle, window: win, hasWin: true})
	c1 := t.alloc(node{parent: h, child0: NoHandle, child1: NoHandle, window: newWindow, hasWin: true})
	t.nodes[h].child0 = c0
	t.nodes[h].child1 = c1

	t.reflow(h)
	return c1
}

// Close removes leaf h. Its sibling's contents (window or grandchildren)
// are absorbed into the parent, and the parent's own window/children are
// replaced accordingly. Returns the absorbing parent's handle, or
// NoHandle if h was the tree's root (root cannot be closed).
func (t *Tree) Close(h Handle) Handle {
	parent := t.nodes[h].parent
	if parent == NoHandle {
		return NoHandle
	}

	var siblingHandle Handle
	if t.nodes[parent].child0 == h {
		siblingHandle = t.nodes[parent].child1
	} else {
		siblingHandle = t.nodes[parent].child0
	}
	sibling := t.nodes[siblingHandle]

	t.nodes[parent].child0 = sibling.child0
	t.nodes[parent].child1 = sibling.child1
	t.nodes[parent].hasWin = sibling.hasWin
	t.nodes[parent].window = sibling.window
	t.nodes[parent].stacked = sibling.stacked
	t.nodes[parent].split = sibling.split

	if sibling.child0 != NoHandle {
		t.nodes[sibling.child0].parent = parent
	}
	if sibling.child1 != NoHandle {
		t.nodes[sibling.child1].parent = parent
	}

	t.reflow(parent)
	return parent
}

// Swap exchanges the two children of h's parent and reflows. No-op at
// the root.
func (t *Tree) Swap(h Handle) {
	parent := t.nodes[h].parent
	if parent == NoHandle {
		return
	}
	t.nodes[parent].child0, t.nodes[parent].child1 = t.nodes[parent].child1, t.nodes[parent].child0
	t.reflow(parent)
}

// Resize adjusts h's parent split ratio by amount cells along the
// parent's split axis, doubling the amount on a non-stacked (left/right)
// parent since the separator column halves the visible effect of a
// ratio change. No-op at the root.
func (t *Tree) Resize(h Handle, amount int) {
	parent := t.nodes[h].parent
	if parent == NoHandle {
		return
	}
	p := &t.nodes[parent]
	total := p.rect.Width
	if p.stacked {
		total = p.rect.Height
	}
	if !p.stacked {
		amount *= 2
	}
	if total > 0 {
		p.split += float64(amount) / float64(total)
	}
	t.reflow(parent)
}

// reflow recomputes h and its descendants' rectangles from h's own
// rectangle and split ratio, clamping split so both sides stay at or
// above the minimum window dimensions.
func (t *Tree) reflow(h Handle) {
	n := &t.nodes[h]
	if n.hasWin {
		return
	}
	c0, c1 := n.child0, n.child1
	t.nodes[c0].rect.X = n.rect.X
	t.nodes[c0].rect.Y = n.rect.Y

	if n.stacked {
		height := int(limit(float64(n.rect.Height)*n.split, WindowMinimumHeight, float64(n.rect.Height-WindowMinimumHeight)))
		if n.rect.Height > 0 {
			n.split = float64(height) / float64(n.rect.Height)
		}
		t.nodes[c0].rect.Width = n.rect.Width
		t.nodes[c1].rect.Width = n.rect.Width
		t.nodes[c0].rect.Height = height
		t.nodes[c1].rect.Height = n.rect.Height - height
		t.nodes[c1].rect.X = n.rect.X
		t.nodes[c1].rect.Y = n.rect.Y + height
	} else {
		width := int(limit(float64(n.rect.Width)*n.split, WindowMinimumWidth, float64(n.rect.Width-WindowMinimumWidth-1)))
		if n.rect.Width > 0 {
			n.split = float64(width) / float64(n.rect.Width)
		}
		t.nodes[c0].rect.Height = n.rect.Height
		t.nodes[c1].rect.Height = n.rect.Height
		t.nodes[c0].rect.Width = width
		t.nodes[c1].rect.Width = n.rect.Width - width - 1 // separator column
		t.nodes[c1].rect.X = n.rect.X + width
		t.nodes[c1].rect.Y = n.rect.Y
	}

	t.reflow(c0)
	t.reflow(c1)
}

// ResizeRoot propagates a new root rectangle through the whole tree, used
// on startup and on window-change.
func (t *Tree) ResizeRoot(rect Rect) {
	t.nodes[t.root].rect = rect
	t.reflow(t.root)
}

func (t *Tree) recurseLeft(h Handle) Handle {
	if t.nodes[h].hasWin {
		return h
	}
	return t.recurseLeft(t.nodes[h].child0)
}

func (t *Tree) recurseRight(h Handle) Handle {
	if t.nodes[h].hasWin {
		return h
	}
	return t.recurseRight(t.nodes[h].child1)
}

// Next returns the leaf that follows h in the tree's left-to-right,
// top-to-bottom order, wrapping around at the root.
func (t *Tree) Next(h Handle) Handle {
	parent := t.nodes[h].parent
	if parent == NoHandle {
		return t.recurseLeft(h)
	}
	if t.nodes[parent].child0 == h {
		return t.recurseLeft(t.nodes[parent].child1)
	}
	return t.Next(parent)
}

// Previous returns the leaf preceding h, the mirror of Next.
func (t *Tree) Previous(h Handle) Handle {
	parent := t.nodes[h].parent
	if parent == NoHandle {
		return t.recurseRight(h)
	}
	if t.nodes[parent].child1 == h {
		return t.recurseRight(t.nodes[parent].child0)
	}
	return t.Previous(parent)
}

// Leaves returns every leaf handle in left-to-right tree order.
func (t *Tree) Leaves() []Handle {
	var out []Handle
	var walk func(Handle)
	walk = func(h Handle) {
		if t.nodes[h].hasWin {
			out = append(out, h)
			return
		}
		walk(t.nodes[h].child0)
		walk(t.nodes[h].child1)
	}
	walk(t.root)
	return out
}
