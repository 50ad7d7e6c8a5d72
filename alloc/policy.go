package alloc

import "fmt"

// Policy chooses which free block satisfies an allocation request.
//
// Select receives the ordered block list and the requested length and returns
// the index of a free block with Len >= n, or ok = false when none qualifies.
// It must not modify blocks.
type Policy interface {
	Name() string
	Select(blocks []Block, n int) (idx int, ok bool)
}

// Built-in policies.
var (
	// LastFit picks the free block with the highest start among those large
	// enough. This is the default.
	LastFit Policy = lastFit{}

	// FirstFit picks the free block with the lowest start among those large enough.
	FirstFit Policy = firstFit{}

	// BestFit picks the smallest free block that is large enough, preferring
	// the lowest start on ties.
	BestFit Policy = bestFit{}
)

// PolicyByName resolves "last-fit", "first-fit" or "best-fit".
func PolicyByName(name string) (Policy, error) {
	for _, p := range []Policy{LastFit, FirstFit, BestFit} {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("alloc: unknown policy %q", name)
}

type lastFit struct{}

func (lastFit) Name() string { return "last-fit" }

// Scanning from the back and stopping at the first hit selects the same
// block as a forward scan that keeps overwriting its candidate.
func (lastFit) Select(blocks []Block, n int) (int, bool) {
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].Free && blocks[i].Len >= n {
			return i, true
		}
	}
	return 0, false
}

type firstFit struct{}

func (firstFit) Name() string { return "first-fit" }

func (firstFit) Select(blocks []Block, n int) (int, bool) {
	for i, b := range blocks {
		if b.Free && b.Len >= n {
			return i, true
		}
	}
	return 0, false
}

type bestFit struct{}

func (bestFit) Name() string { return "best-fit" }

func (bestFit) Select(blocks []Block, n int) (int, bool) {
	best := -1
	for i, b := range blocks {
		if !b.Free || b.Len < n {
			continue
		}
		if best < 0 || b.Len < blocks[best].Len {
			best = i
			if b.Len == n {
				break
			}
		}
	}
	return best, best >= 0
}
