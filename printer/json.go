package printer

import "encoding/json"

// jsonLayout represents a block layout in JSON format.
type jsonLayout struct {
	Size          int         `json:"size"`
	BytesFree     int         `json:"bytes_free"`
	FreeBlocks    int         `json:"free_blocks"`
	LargestFree   int         `json:"largest_free"`
	Fragmentation float64     `json:"fragmentation"`
	Blocks        []jsonBlock `json:"blocks"`
}

// jsonBlock represents one block in JSON format.
type jsonBlock struct {
	Start int  `json:"start"`
	Len   int  `json:"len"`
	Free  bool `json:"free"`
}

// printJSON prints a layout as an indented JSON document.
func (p *Printer) printJSON(l layout) error {
	out := jsonLayout{
		Size:          l.size,
		BytesFree:     l.bytesFree,
		FreeBlocks:    l.freeBlocks,
		LargestFree:   l.largestFree,
		Fragmentation: l.fragmentation(),
		Blocks:        make([]jsonBlock, 0, len(l.blocks)),
	}
	for _, b := range l.blocks {
		if p.opts.FreeOnly && !b.Free {
			continue
		}
		out.Blocks = append(out.Blocks, jsonBlock{Start: b.Start, Len: b.Len, Free: b.Free})
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
