package input

import (
	"context"
	"io"
)

// Reader turns blocking reads from a terminal into a channel of decoded
// keys, feeding a single background goroutine's output down keys so that
// both the main dispatch loop and the finder's abort check (§4.7) can
// observe it without blocking on the read syscall themselves.
//
// Grounded on the teacher's garaekz-tfx/runfx/keyreader.go ReadKey, which
// wraps a blocking read in a goroutine and a select; this reader goes
// one step further and keeps that goroutine alive across calls so
// Pending can do a non-blocking channel check in place of the original's
// zero-timeout select(2) on stdin.
type Reader struct {
	src  io.Reader
	keys chan KeyCode
	errs chan error
}

// NewReader starts the background read loop over src.
func NewReader(src io.Reader) *Reader {
	r := &Reader{
		src:  src,
		keys: make(chan KeyCode, 16),
		errs: make(chan error, 1),
	}
	go r.loop()
	return r
}

func (r *Reader) loop() {
	buf := make([]byte, 64)
	for {
		n, err := r.src.Read(buf)
		if err != nil {
			r.errs <- err
			return
		}
		if n == 0 {
			continue
		}
		r.keys <- Decode(buf[:n])
	}
}

// Next blocks until a key is decoded, the context is canceled, or the
// underlying source errors.
func (r *Reader) Next(ctx context.Context) (KeyCode, error) {
	select {
	case k := <-r.keys:
		return k, nil
	case err := <-r.errs:
		return KeyUnknown, err
	case <-ctx.Done():
		return KeyUnknown, ctx.Err()
	}
}

// Pending reports whether a decoded key is already buffered, i.e.
// whether the next Next call would return immediately. Used by the
// finder to abort an in-progress scan the instant the user types,
// mirroring original_source/editor.c's input_is_pending.
func (r *Reader) Pending() bool {
	return len(r.keys) > 0
}
