package schema

import (
	"golang.org/x/sys/unix"
)

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Open wraps around [unix.Open].
func (*Unix) Open(path string, mode int, perm uint32) (int, error) {
	return unix.Open(path, mode, perm)
}

// Close wraps around [unix.Close].
func (*Unix) Close(fd int) error {
	return unix.Close(fd)
}

// Read wraps around [unix.Read].
func (*Unix) Read(fd int, p []byte) (int, error) {
	return unix.Read(fd, p)
}

// Write wraps around [unix.Write].
func (*Unix) Write(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}
