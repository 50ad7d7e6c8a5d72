package alloc

// Stats holds allocator counters plus a snapshot of the current layout.
type Stats struct {
	AllocCalls       int   // Total Allocate() calls
	AllocFailures    int   // Allocate() calls that returned an error
	FreeCalls        int   // Total Free() calls
	InvalidFrees     int   // Free() calls rejected with ErrInvalidHandle
	SplitCount       int   // Allocations that split a larger block
	CoalesceForward  int   // Merges with the following free block
	CoalesceBackward int   // Merges with the preceding free block
	BytesAllocated   int64 // Total bytes handed out
	BytesFreed       int64 // Total bytes released

	// Layout snapshot, computed when Stats() is called.
	Blocks      int // Number of blocks
	FreeBlocks  int // Number of free blocks
	BytesFree   int // Sum of free block lengths
	LargestFree int // Length of the largest free block
}

// Stats returns the allocator counters and a layout snapshot.
func (ba *BlockAllocator) Stats() Stats {
	s := ba.stats
	s.Blocks = len(ba.blocks)
	for _, b := range ba.blocks {
		if !b.Free {
			continue
		}
		s.FreeBlocks++
		s.BytesFree += b.Len
		s.LargestFree = max(s.LargestFree, b.Len)
	}
	return s
}
