package alloc

import (
	"log/slog"

	"github.com/joshuapare/blockalloc/internal/region"
)

// Backing selects where the allocator's buffer lives.
type Backing uint8

const (
	// BackingHeap keeps the buffer in a Go slice.
	BackingHeap Backing = iota

	// BackingMmap keeps the buffer in an anonymous private mapping outside
	// the Go heap. Platforms without mmap fall back to BackingHeap.
	BackingMmap
)

func (b Backing) kind() region.Kind {
	if b == BackingMmap {
		return region.KindAnonymous
	}
	return region.KindHeap
}

func (b Backing) String() string { return b.kind().String() }

// Config controls allocator construction.
type Config struct {
	// Policy chooses among free blocks that can satisfy a request.
	// Default: LastFit
	Policy Policy

	// Backing selects the buffer storage.
	// Default: BackingHeap
	Backing Backing

	// CheckInvariants re-validates the block list after every mutating
	// operation and panics on corruption.
	// Default: false
	CheckInvariants bool

	// Logger receives allocation trace output at debug level. When nil, trace
	// output goes to stderr if BLOCKALLOC_LOG_ALLOC is set and is discarded
	// otherwise.
	Logger *slog.Logger
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{
	Policy:  LastFit,
	Backing: BackingHeap,
}
