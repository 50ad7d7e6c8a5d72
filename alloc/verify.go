package alloc

import "fmt"

// ValidationError describes a violated block list invariant.
// It unwraps to ErrCorrupt.
type ValidationError struct {
	Type    string
	Message string
	Offset  int // buffer offset of the offending block, -1 when not tied to one
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrCorrupt }

// Validate checks that blocks partition [0, size) in order, that every block
// is non-empty, and that no two neighbours are both free.
// Returns the first violation found, or nil.
func Validate(size int, blocks []Block) error {
	if len(blocks) == 0 {
		return &ValidationError{Type: "BlockCount", Message: "no blocks", Offset: -1}
	}

	next := 0
	for i, b := range blocks {
		if b.Len < 1 {
			return &ValidationError{
				Type:    "BlockLength",
				Message: fmt.Sprintf("block %d has length %d", i, b.Len),
				Offset:  b.Start,
			}
		}
		if b.Start != next {
			kind := "gap"
			if b.Start < next {
				kind = "overlap"
			}
			return &ValidationError{
				Type:    "Partition",
				Message: fmt.Sprintf("%s: block %d starts at %d, expected %d", kind, i, b.Start, next),
				Offset:  b.Start,
			}
		}
		if i > 0 && b.Free && blocks[i-1].Free {
			return &ValidationError{
				Type:    "Coalesce",
				Message: fmt.Sprintf("blocks %d and %d are both free", i-1, i),
				Offset:  b.Start,
			}
		}
		next = b.End()
	}

	if next != size {
		return &ValidationError{
			Type:    "Partition",
			Message: fmt.Sprintf("blocks end at %d, capacity is %d", next, size),
			Offset:  -1,
		}
	}
	return nil
}
