package alloc

import "fmt"

// Handle identifies an allocated block. It is the block's start offset in the
// buffer and carries no ownership; it is meaningless once the block is freed.
type Handle int

// Block is one contiguous, non-empty range of the buffer.
type Block struct {
	Start int  // offset of the first byte
	Len   int  // number of bytes covered, always >= 1
	Free  bool // true when the range is unallocated
}

// End returns the exclusive end offset of the block.
func (b Block) End() int { return b.Start + b.Len }

func (b Block) String() string {
	state := "used"
	if b.Free {
		state = "free"
	}
	return fmt.Sprintf("[%d,%d) %s", b.Start, b.End(), state)
}

// Allocator is the operation set shared by BlockAllocator and SyncAllocator.
//
// Implementations:
//   - BlockAllocator: the unsynchronised core
//   - SyncAllocator: BlockAllocator behind a single mutex
type Allocator interface {
	// Size returns the fixed buffer capacity.
	Size() int

	// BytesFree returns the total length of all free blocks.
	BytesFree() int

	// Allocate reserves n bytes and returns a handle for them.
	Allocate(n int) (Handle, error)

	// Free releases the block named by h and coalesces it with free neighbours.
	Free(h Handle) error

	// Bytes returns the live view of the block named by h.
	Bytes(h Handle) ([]byte, error)

	// Blocks returns a copy of the current block list, for diagnostics only.
	Blocks() []Block
}

var (
	_ Allocator = (*BlockAllocator)(nil)
	_ Allocator = (*SyncAllocator)(nil)
)
