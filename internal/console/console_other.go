//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package console

import "errors"

func IsTerminal(fd uintptr) bool {
	return false
}

func ReadKey(device string) (byte, error) {
	return 0, errors.New("single key input is not supported on this platform")
}
