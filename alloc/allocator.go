package alloc

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/joshuapare/blockalloc/internal/buf"
	"github.com/joshuapare/blockalloc/internal/region"
)

// BlockAllocator hands out byte ranges of one fixed buffer.
// - blocks is ordered by Start and partitions [0, size) exactly
// - no two neighbouring blocks are both free
// - the buffer never grows, shrinks or moves
type BlockAllocator struct {
	mem    *region.Region
	buffer []byte
	size   int

	blocks []Block

	policy Policy
	check  bool

	log   *slog.Logger
	trace bool

	stats Stats
}

// New creates an allocator over a zeroed buffer of size bytes, represented by
// a single free block.
//
// Parameters:
//   - size: buffer capacity, must be >= 1
//   - cfg: allocator configuration (use nil for DefaultConfig)
func New(size int, cfg *Config) (*BlockAllocator, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidRequest, size)
	}

	mem, err := region.New(cfg.Backing.kind(), size)
	if err != nil {
		return nil, fmt.Errorf("alloc: provision %s buffer: %w", cfg.Backing, err)
	}

	policy := cfg.Policy
	if policy == nil {
		policy = LastFit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger()
	}

	ba := &BlockAllocator{
		mem:    mem,
		buffer: mem.Bytes(),
		size:   size,
		blocks: []Block{{Start: 0, Len: size, Free: true}},
		policy: policy,
		check:  cfg.CheckInvariants,
		log:    logger,
		trace:  logger.Enabled(context.Background(), slog.LevelDebug),
	}
	if ba.trace {
		ba.log.Debug("init", "size", size, "policy", policy.Name(), "backing", cfg.Backing.String())
	}
	return ba, nil
}

// Size returns the buffer capacity. It never changes.
func (ba *BlockAllocator) Size() int { return ba.size }

// Policy returns the selection policy in use.
func (ba *BlockAllocator) Policy() Policy { return ba.policy }

// BytesFree returns the sum of the lengths of all free blocks.
func (ba *BlockAllocator) BytesFree() int {
	total := 0
	for _, b := range ba.blocks {
		if b.Free {
			total += b.Len
		}
	}
	return total
}

// Allocate reserves n bytes from the free block chosen by the policy.
//
// An exact fit is marked used in place. A larger block is split into a used
// head of n bytes followed by a free remainder. Buffer contents are not
// touched. Returns ErrInvalidRequest for n < 1 and ErrOutOfMemory when no
// free block is large enough; in both cases the block list is unchanged.
func (ba *BlockAllocator) Allocate(n int) (Handle, error) {
	if ba.buffer == nil {
		return 0, ErrClosed
	}
	ba.stats.AllocCalls++

	if n < 1 {
		ba.stats.AllocFailures++
		return 0, ErrInvalidRequest
	}

	idx, ok := ba.policy.Select(ba.blocks, n)
	if !ok {
		ba.stats.AllocFailures++
		if ba.trace {
			ba.log.Debug("alloc failed", "need", n, "free", ba.BytesFree(), "blocks", len(ba.blocks))
		}
		return 0, ErrOutOfMemory
	}
	if idx < 0 || idx >= len(ba.blocks) || !ba.blocks[idx].Free || ba.blocks[idx].Len < n {
		ba.stats.AllocFailures++
		return 0, fmt.Errorf("%w: policy %s selected unusable block %d for %d bytes",
			ErrCorrupt, ba.policy.Name(), idx, n)
	}

	b := ba.blocks[idx]
	if b.Len == n {
		ba.blocks[idx].Free = false
	} else {
		ba.stats.SplitCount++
		ba.blocks = slices.Replace(ba.blocks, idx, idx+1,
			Block{Start: b.Start, Len: n},
			Block{Start: b.Start + n, Len: b.Len - n, Free: true},
		)
	}
	ba.stats.BytesAllocated += int64(n)

	if ba.trace {
		ba.log.Debug("alloc", "need", n, "off", b.Start, "from", b.Len, "split", b.Len != n)
	}
	ba.verify("Allocate")
	return Handle(b.Start), nil
}

// Free releases the used block starting at h and merges it with a free
// predecessor and a free successor. Released bytes keep their contents.
//
// Returns ErrInvalidHandle when h does not name a used block, for example on
// a double free; the allocator is left unchanged.
func (ba *BlockAllocator) Free(h Handle) error {
	if ba.buffer == nil {
		return ErrClosed
	}
	ba.stats.FreeCalls++

	idx, ok := ba.find(h)
	if !ok {
		ba.stats.InvalidFrees++
		if ba.trace {
			ba.log.Debug("free rejected", "handle", int(h))
		}
		return ErrInvalidHandle
	}

	merged := ba.blocks[idx]
	merged.Free = true
	ba.stats.BytesFreed += int64(merged.Len)

	lo, hi := idx, idx+1
	if lo > 0 && ba.blocks[lo-1].Free {
		lo--
		merged.Start = ba.blocks[lo].Start
		merged.Len += ba.blocks[lo].Len
		ba.stats.CoalesceBackward++
	}
	if hi < len(ba.blocks) && ba.blocks[hi].Free {
		merged.Len += ba.blocks[hi].Len
		hi++
		ba.stats.CoalesceForward++
	}
	ba.blocks = slices.Replace(ba.blocks, lo, hi, merged)

	if ba.trace {
		ba.log.Debug("free", "handle", int(h), "merged", merged.String(), "absorbed", hi-lo-1)
	}
	ba.verify("Free")
	return nil
}

// Bytes returns the buffer range of the used block named by h. The slice is
// a view into the allocator's buffer and is valid only until h is freed.
func (ba *BlockAllocator) Bytes(h Handle) ([]byte, error) {
	if ba.buffer == nil {
		return nil, ErrClosed
	}
	idx, ok := ba.find(h)
	if !ok {
		return nil, ErrInvalidHandle
	}
	b := ba.blocks[idx]
	view, ok := buf.Slice(ba.buffer, b.Start, b.Len)
	if !ok {
		return nil, fmt.Errorf("%w: block %s outside buffer of %d bytes", ErrCorrupt, b, len(ba.buffer))
	}
	return view, nil
}

// BlockOf returns the used block named by h.
func (ba *BlockAllocator) BlockOf(h Handle) (Block, error) {
	idx, ok := ba.find(h)
	if !ok {
		return Block{}, ErrInvalidHandle
	}
	return ba.blocks[idx], nil
}

// Blocks returns a copy of the block list. It is meant for diagnostics and
// does not affect allocator state.
func (ba *BlockAllocator) Blocks() []Block {
	return slices.Clone(ba.blocks)
}

// Check validates the live block list.
func (ba *BlockAllocator) Check() error {
	return Validate(ba.size, ba.blocks)
}

// Close releases the backing buffer. Subsequent Allocate, Free and Bytes
// calls return ErrClosed. Close is idempotent.
func (ba *BlockAllocator) Close() error {
	if ba.buffer == nil {
		return nil
	}
	ba.buffer = nil
	return ba.mem.Close()
}

// find returns the index of the used block starting at h.
func (ba *BlockAllocator) find(h Handle) (int, bool) {
	idx, found := slices.BinarySearchFunc(ba.blocks, int(h), func(b Block, off int) int {
		return cmp.Compare(b.Start, off)
	})
	if !found || ba.blocks[idx].Free {
		return 0, false
	}
	return idx, true
}

// verify panics if invariant checking is on and the block list is corrupt.
func (ba *BlockAllocator) verify(op string) {
	if !ba.check {
		return
	}
	if err := Validate(ba.size, ba.blocks); err != nil {
		panic(fmt.Sprintf("alloc: %s left block list corrupt: %v", op, err))
	}
}
