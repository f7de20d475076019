//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	term "github.com/pkg/term"
	"golang.org/x/sys/unix"
)

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	return err == nil
}

// ReadKey reads one byte from device in raw mode, so no Enter is needed.
func ReadKey(device string) (byte, error) {
	tt, err := term.Open(device, term.RawMode)
	if err != nil {
		return 0, err
	}
	defer tt.Close()
	defer tt.Restore()

	buf := make([]byte, 1)
	if _, err := tt.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
