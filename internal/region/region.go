// Package region provisions the fixed backing storage an allocator carves up.
//
// A Region is either a plain Go heap slice or, on platforms that support it,
// a private anonymous memory mapping that lives outside the Go heap. Either
// way the length is fixed at creation and never changes.
package region

import (
	"errors"
	"fmt"
)

// Kind selects how a Region's bytes are provisioned.
type Kind uint8

const (
	// KindHeap backs the region with a Go slice.
	KindHeap Kind = iota

	// KindAnonymous backs the region with an anonymous private mapping.
	// Falls back to KindHeap where mmap is unavailable.
	KindAnonymous
)

func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindAnonymous:
		return "mmap"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ErrBadSize is returned when a region of non-positive length is requested.
var ErrBadSize = errors.New("region: size must be positive")

// Region is a fixed-length, zero-initialised byte range with a single owner.
type Region struct {
	data    []byte
	kind    Kind
	release func() error
}

// New provisions n bytes using the given kind.
func New(kind Kind, n int) (*Region, error) {
	switch kind {
	case KindHeap:
		return Heap(n)
	case KindAnonymous:
		return Anonymous(n)
	default:
		return nil, fmt.Errorf("region: unknown kind %d", kind)
	}
}

// Heap provisions n bytes on the Go heap.
func Heap(n int) (*Region, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	return &Region{data: make([]byte, n), kind: KindHeap}, nil
}

// Bytes returns the backing storage. It is nil after Close.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the region length in bytes, or 0 after Close.
func (r *Region) Len() int { return len(r.data) }

// Kind reports how the region was provisioned.
func (r *Region) Kind() Kind { return r.kind }

// Close releases the storage. Calling Close more than once is a no-op.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	release := r.release
	r.data = nil
	r.release = nil
	if release == nil {
		return nil
	}
	return release()
}
