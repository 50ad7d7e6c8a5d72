package alloc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestAllocator creates an allocator with invariant checking enabled.
func newTestAllocator(t testing.TB, size int, policy Policy) *BlockAllocator {
	t.Helper()
	ba, err := New(size, &Config{Policy: policy, CheckInvariants: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ba.Close() })
	return ba
}

// shape renders the block list compactly, e.g. "U4 F8".
func shape(ba *BlockAllocator) string {
	parts := make([]string, 0, len(ba.blocks))
	for _, b := range ba.blocks {
		tag := "U"
		if b.Free {
			tag = "F"
		}
		parts = append(parts, fmt.Sprintf("%s%d", tag, b.Len))
	}
	return strings.Join(parts, " ")
}

// usedBytes sums the lengths of used blocks.
func usedBytes(ba *BlockAllocator) int {
	total := 0
	for _, b := range ba.blocks {
		if !b.Free {
			total += b.Len
		}
	}
	return total
}

// assertInvariants checks the structural invariants and capacity conservation.
func assertInvariants(t testing.TB, ba *BlockAllocator) {
	t.Helper()
	require.NoError(t, ba.Check())
	require.Equal(t, ba.Size(), ba.BytesFree()+usedBytes(ba), "capacity not conserved")
}

// mustAlloc allocates n bytes or fails the test.
func mustAlloc(t testing.TB, ba *BlockAllocator, n int) Handle {
	t.Helper()
	h, err := ba.Allocate(n)
	require.NoError(t, err, "Allocate(%d)", n)
	return h
}
