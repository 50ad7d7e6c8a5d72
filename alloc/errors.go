package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that no free block large enough was found.
	// The block list is left unchanged.
	ErrOutOfMemory = errors.New("alloc: no free block large enough")

	// ErrInvalidHandle indicates a handle that does not name a used block:
	// never returned by Allocate, or already freed.
	ErrInvalidHandle = errors.New("alloc: handle does not refer to an allocated block")

	// ErrInvalidRequest indicates a non-positive allocation or capacity size.
	ErrInvalidRequest = errors.New("alloc: size must be >= 1")

	// ErrCorrupt indicates the block list violates a structural invariant.
	ErrCorrupt = errors.New("alloc: block list corrupt")

	// ErrClosed indicates use of an allocator after Close.
	ErrClosed = errors.New("alloc: allocator closed")
)
