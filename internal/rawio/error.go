package rawio

import "errors"

var (
	// ErrCloseFailed is an error that occurs when the kernel refuses to
	// release a descriptor.
	ErrCloseFailed = errors.New("failed to close descriptor")

	// ErrReadSizeMismatch is an error that occurs when the kernel transfers
	// a different number of bytes than a read requested.
	ErrReadSizeMismatch = errors.New("read size mismatch")

	// ErrWriteSizeMismatch is an error that occurs when the kernel transfers
	// fewer bytes than a write provided.
	ErrWriteSizeMismatch = errors.New("write size mismatch")
)
