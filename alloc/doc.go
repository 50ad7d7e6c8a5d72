// Package alloc provides a fixed-capacity block allocator over a single buffer.
//
// # Overview
//
// A BlockAllocator owns one buffer of a size chosen at construction and never
// asks for more memory afterwards. The buffer is described by an ordered list
// of blocks that partition it with no gaps and no overlaps. Each block is
// either free or used.
//
//   - Allocate(n): pick a free block of at least n bytes, split off the head
//   - Free(h): mark the block used at h free and coalesce with free neighbours
//   - BytesFree(): total length of free blocks
//   - Bytes(h): the live buffer view of an allocation
//
// # Usage Example
//
//	ba, err := alloc.New(64, nil)
//	if err != nil {
//	    return err
//	}
//	defer ba.Close()
//
//	h, err := ba.Allocate(8)
//	if err != nil {
//	    return err
//	}
//	b, _ := ba.Bytes(h)
//	binary.LittleEndian.PutUint64(b, 5)
//
//	// Later
//	err = ba.Free(h)
//
// # Selection Policies
//
// When several free blocks can satisfy a request, the configured Policy
// chooses one:
//
//	LastFit   highest start among large-enough blocks (default)
//	FirstFit  lowest start among large-enough blocks
//	BestFit   smallest large-enough block, lowest start on ties
//
// # Handles
//
// A Handle is the start offset of an allocated block. Freeing a handle that
// is unknown or already free returns ErrInvalidHandle and changes nothing.
//
// # Alignment
//
// Allocations are byte-granular. No alignment is promised.
//
// # Thread Safety
//
// BlockAllocator is not thread-safe. Callers must synchronise access
// externally, or wrap it with NewSync.
package alloc
