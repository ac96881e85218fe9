package rawio

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Open(path string, mode int, perm uint32) (int, error)
	Close(fd int) error
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
}

// Descriptor is an opaque handle to an open kernel resource. It is produced
// only by [Handler.Open] and consumed by [Handler.Close]; using it after
// close is the caller's responsibility to avoid.
type Descriptor struct {
	fd int
}

// Fd exposes the raw integer handle for external collaborators (ioctl
// callers); the handle stays owned by this package.
func (d Descriptor) Fd() int {
	return d.fd
}

// Handler is the sole crossing point between the process and kernel device
// nodes. All operations are synchronous, stateless and never retried; a
// short transfer is always reported as a failure, never as a partial success.
type Handler struct {
	UnixOps unixProvider
}

func NewHandler(unixOps unixProvider) *Handler {
	return &Handler{
		UnixOps: unixOps,
	}
}

// Open opens the resource at path read-write, the default access mode.
func (h *Handler) Open(path string) (Descriptor, error) {
	return h.OpenWithFlag(path, unix.O_RDWR)
}

// OpenWithFlag opens the resource at path with the given flag, passed through
// to the kernel uninterpreted.
func (h *Handler) OpenWithFlag(path string, flag int) (Descriptor, error) {
	slog.Debug("Opening path.", "path", path, "flag", flag)

	fd, err := h.UnixOps.Open(path, flag, 0)
	if err != nil {
		return Descriptor{}, fmt.Errorf("(rawio) failed to open %q (flag %#x): %w", path, flag, err)
	}

	slog.Debug("Opened path.", "path", path, "fd", fd)

	return Descriptor{fd: fd}, nil
}

// Close releases the descriptor; the handle is consumed regardless of the
// outcome.
func (h *Handler) Close(d Descriptor) error {
	slog.Debug("Closing descriptor.", "fd", d.fd)

	if err := h.UnixOps.Close(d.fd); err != nil {
		return fmt.Errorf("(rawio) %w (fd %d): %w", ErrCloseFailed, d.fd, err)
	}

	return nil
}

// Read requests exactly size bytes from the descriptor. A transfer of any
// other length fails with [ErrReadSizeMismatch] carrying both counts; the
// partially filled buffer is never returned.
func (h *Handler) Read(d Descriptor, size int) ([]byte, error) {
	slog.Debug("Reading from descriptor.", "fd", d.fd, "size", size)

	buf := make([]byte, size)

	n, err := h.UnixOps.Read(d.fd, buf)
	if err != nil {
		return nil, fmt.Errorf("(rawio) failed to read %d bytes (fd %d): %w", size, d.fd, err)
	}

	if n != size {
		return nil, fmt.Errorf("(rawio) %w: read %d of %d bytes (fd %d)", ErrReadSizeMismatch, n, size, d.fd)
	}

	return buf, nil
}

// Write hands all of data to the descriptor. A transfer of fewer bytes fails
// with [ErrWriteSizeMismatch] carrying both counts; nothing is retried. A
// zero-length write succeeds trivially.
func (h *Handler) Write(d Descriptor, data []byte) error {
	slog.Debug("Writing to descriptor.", "fd", d.fd, "size", len(data))

	n, err := h.UnixOps.Write(d.fd, data)
	if err != nil {
		return fmt.Errorf("(rawio) failed to write %d bytes (fd %d): %w", len(data), d.fd, err)
	}

	if n != len(data) {
		return fmt.Errorf("(rawio) %w: wrote %d of %d bytes (fd %d)", ErrWriteSizeMismatch, n, len(data), d.fd)
	}

	return nil
}
