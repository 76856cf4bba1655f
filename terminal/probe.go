package terminal

import (
	"fmt"
	"io"
)

// ProbeSize discovers the terminal's size by the CSI 6n cursor-position
// trick: save the cursor, jump to an oversized (500, 500) position (which
// clamps to the bottom-right corner), ask for the cursor position, and
// parse the `CSI y;xR` reply. This is the fallback path for terminals
// or environments where an ioctl-based size query is unavailable, and
// is also how the original driver discovers size on startup and after
// a window-change signal (spec.md §4.2).
//
// rw must already be in raw mode (VMIN=0, VTIME>0) so the read below
// does not block forever if the terminal never replies.
func ProbeSize(rw io.ReadWriter) (width, height int, err error) {
	if _, err = io.WriteString(rw, "\x1b[s\x1b[500;500H\x1b[6n"); err != nil {
		return 0, 0, err
	}
	defer io.WriteString(rw, "\x1b[u")

	var buf [32]byte
	n := 0
	for n < len(buf) {
		m, rerr := rw.Read(buf[n : n+1])
		if m > 0 {
			n += m
			if buf[n-1] == 'R' {
				break
			}
		}
		if rerr != nil || m == 0 {
			break
		}
	}

	if n == 0 {
		return 0, 0, fmt.Errorf("terminal: no response to cursor position request")
	}

	reply := buf[:n]
	start := -1
	for i, b := range reply {
		if b == '[' {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return 0, 0, fmt.Errorf("terminal: malformed cursor position reply %q", reply)
	}

	if _, err := fmt.Sscanf(string(reply[start:]), "%d;%dR", &height, &width); err != nil {
		return 0, 0, fmt.Errorf("terminal: could not parse cursor position reply %q: %w", reply, err)
	}
	return width, height, nil
}
