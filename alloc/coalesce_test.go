package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoalesce_ThreeNeighbours allocates A, B, C of 4 bytes each from a
// 12-byte buffer and frees them middle first, then left, then right.
func TestCoalesce_ThreeNeighbours(t *testing.T) {
	ba := newTestAllocator(t, 12, nil)
	initial := ba.Blocks()

	a := mustAlloc(t, ba, 4)
	b := mustAlloc(t, ba, 4)
	c := mustAlloc(t, ba, 4)
	require.Equal(t, "U4 U4 U4", shape(ba))
	require.Zero(t, ba.BytesFree())

	// Both neighbours used: no merge.
	require.NoError(t, ba.Free(b))
	require.Equal(t, "U4 F4 U4", shape(ba))

	// A merges forward with B.
	require.NoError(t, ba.Free(a))
	require.Equal(t, "F8 U4", shape(ba))
	require.Equal(t, Block{Start: 0, Len: 8, Free: true}, ba.Blocks()[0])

	// C merges backward into the original single block.
	require.NoError(t, ba.Free(c))
	require.Equal(t, initial, ba.Blocks())
	assertInvariants(t, ba)
}

// TestCoalesce_Backward verifies a freed block merges into a free predecessor.
func TestCoalesce_Backward(t *testing.T) {
	ba := newTestAllocator(t, 32, nil)
	a := mustAlloc(t, ba, 8)
	b := mustAlloc(t, ba, 8)
	mustAlloc(t, ba, 16)
	require.NoError(t, ba.Free(a))
	require.Equal(t, "F8 U8 U16", shape(ba))

	require.NoError(t, ba.Free(b))
	require.Equal(t, "F16 U16", shape(ba))

	stats := ba.Stats()
	assert.Equal(t, 1, stats.CoalesceBackward)
	assert.Zero(t, stats.CoalesceForward)
	assertInvariants(t, ba)
}

// TestCoalesce_Forward verifies a freed block absorbs a free successor.
func TestCoalesce_Forward(t *testing.T) {
	ba := newTestAllocator(t, 32, nil)
	a := mustAlloc(t, ba, 8)
	mustAlloc(t, ba, 8)
	require.Equal(t, "U8 U8 F16", shape(ba))

	b, err := ba.BlockOf(Handle(8))
	require.NoError(t, err)
	require.NoError(t, ba.Free(Handle(b.Start)))
	require.Equal(t, "U8 F24", shape(ba))
	require.Equal(t, Block{Start: 8, Len: 24, Free: true}, ba.Blocks()[1])

	stats := ba.Stats()
	assert.Equal(t, 1, stats.CoalesceForward)
	assert.Zero(t, stats.CoalesceBackward)

	require.NoError(t, ba.Free(a))
	require.Equal(t, "F32", shape(ba))
	assertInvariants(t, ba)
}

// TestCoalesce_Bidirectional verifies freeing a block between two free
// blocks leaves a single free block in one call.
func TestCoalesce_Bidirectional(t *testing.T) {
	ba := newTestAllocator(t, 40, nil)
	a := mustAlloc(t, ba, 8)
	b := mustAlloc(t, ba, 8)
	c := mustAlloc(t, ba, 8)
	mustAlloc(t, ba, 16)
	require.NoError(t, ba.Free(a))
	require.NoError(t, ba.Free(c))
	require.Equal(t, "F8 U8 F8 U16", shape(ba))

	require.NoError(t, ba.Free(b))
	require.Equal(t, "F24 U16", shape(ba))

	stats := ba.Stats()
	assert.Equal(t, 1, stats.CoalesceBackward)
	assert.Equal(t, 1, stats.CoalesceForward)
	assertInvariants(t, ba)
}

// TestCoalesce_Edges verifies merging at the first and last block.
func TestCoalesce_Edges(t *testing.T) {
	ba := newTestAllocator(t, 24, nil)
	a := mustAlloc(t, ba, 8)
	b := mustAlloc(t, ba, 8)
	c := mustAlloc(t, ba, 8)

	require.NoError(t, ba.Free(a))
	require.Equal(t, "F8 U8 U8", shape(ba))
	require.NoError(t, ba.Free(c))
	require.Equal(t, "F8 U8 F8", shape(ba))
	require.NoError(t, ba.Free(b))
	require.Equal(t, "F24", shape(ba))
}

// TestCoalesce_RoundTrip verifies allocate-then-free restores the exact
// layout from a fragmented starting point, for every policy.
func TestCoalesce_RoundTrip(t *testing.T) {
	for _, policy := range []Policy{LastFit, FirstFit, BestFit} {
		t.Run(policy.Name(), func(t *testing.T) {
			ba := newTestAllocator(t, 64, policy)
			hs := make([]Handle, 0, 8)
			for range 8 {
				hs = append(hs, mustAlloc(t, ba, 6))
			}
			require.NoError(t, ba.Free(hs[1]))
			require.NoError(t, ba.Free(hs[2]))
			require.NoError(t, ba.Free(hs[5]))

			before := ba.Blocks()
			freeBefore := ba.BytesFree()

			for _, k := range []int{1, 6, 12, 16} {
				h := mustAlloc(t, ba, k)
				require.Equal(t, freeBefore-k, ba.BytesFree())
				require.NoError(t, ba.Free(h))
				require.Equal(t, freeBefore, ba.BytesFree())
				require.Equal(t, before, ba.Blocks(), "k=%d", k)
			}
		})
	}
}
