package alloc

import "sync"

// SyncAllocator serialises every operation on a BlockAllocator behind one
// mutex. The wrapped allocator must not be used directly afterwards.
//
// Slices returned by Bytes are views into the shared buffer; the lock does
// not cover reads and writes through them.
type SyncAllocator struct {
	mu sync.Mutex
	ba *BlockAllocator
}

// NewSync wraps ba for use from multiple goroutines.
func NewSync(ba *BlockAllocator) *SyncAllocator {
	return &SyncAllocator{ba: ba}
}

func (s *SyncAllocator) Size() int {
	return s.ba.Size()
}

func (s *SyncAllocator) BytesFree() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.BytesFree()
}

func (s *SyncAllocator) Allocate(n int) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.Allocate(n)
}

func (s *SyncAllocator) Free(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.Free(h)
}

func (s *SyncAllocator) Bytes(h Handle) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.Bytes(h)
}

func (s *SyncAllocator) Blocks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.Blocks()
}

func (s *SyncAllocator) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.Stats()
}

func (s *SyncAllocator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ba.Close()
}
