//go:build linux

package terminal

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"
)

// Embedded Linux variants (only define if not in unix package)
const tcgetsEmbedded = 0x5400 // Some embedded systems (routers, IoT)

// isTerminal checks if fd is a terminal on Linux-based systems.
func isTerminal(fd uintptr) bool {
	if _, err := unix.IoctlGetTermios(int(fd), unix.TCGETS); err == nil {
		return true
	}

	if isEmbeddedArch() {
		if _, err := unix.IoctlGetTermios(int(fd), tcgetsEmbedded); err == nil {
			return true
		}
	}

	return false
}

// isEmbeddedArch reports whether we're running on an embedded architecture,
// where some kernels answer TCGETS on a nonstandard ioctl number.
func isEmbeddedArch() bool {
	return runtime.GOARCH == "arm" || runtime.GOARCH == "arm64" ||
		runtime.GOARCH == "mips" || runtime.GOARCH == "mipsle" ||
		runtime.GOARCH == "mips64" || runtime.GOARCH == "mips64le"
}

// enableANSI is a no-op on Linux (ANSI is natively supported).
func enableANSI() bool {
	return true
}

// listenForSignals handles SIGWINCH (resize) and SIGINT/SIGTERM (stop) on Linux.
func listenForSignals(ctx context.Context, handler *SignalHandler) {
	resizeCh := make(chan os.Signal, 1)
	stopCh := make(chan os.Signal, 1)

	signal.Notify(resizeCh, syscall.SIGWINCH)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(resizeCh)
	defer signal.Stop(stopCh)

	for {
		select {
		case <-ctx.Done():
			if handler.onStop != nil {
				handler.onStop()
			}
			return
		case <-handler.stopCh:
			return
		case <-resizeCh:
			if handler.onResize != nil {
				handler.onResize()
			}
		case <-stopCh:
			if handler.onStop != nil {
				handler.onStop()
			}
			return
		}
	}
}
