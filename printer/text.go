package printer

import "strings"

// printText prints a layout in human-readable text format.
func (p *Printer) printText(l layout) error {
	w := p.writer
	if _, err := p.msg.Fprintf(w, "Capacity:      %d bytes\n", l.size); err != nil {
		return err
	}
	p.msg.Fprintf(w, "Free:          %d bytes in %d block(s)\n", l.bytesFree, l.freeBlocks)
	p.msg.Fprintf(w, "Largest free:  %d bytes\n", l.largestFree)
	p.msg.Fprintf(w, "Fragmentation: %.1f%%\n", l.fragmentation()*100)
	p.msg.Fprintf(w, "Blocks:        %d\n", len(l.blocks))

	indent := strings.Repeat(" ", p.opts.IndentSize)
	for _, b := range l.blocks {
		if p.opts.FreeOnly && !b.Free {
			continue
		}
		state := "used"
		if b.Free {
			state = "free"
		}
		if _, err := p.msg.Fprintf(w, "%s[%10d, %10d)  %s  %d bytes\n",
			indent, b.Start, b.End(), state, b.Len); err != nil {
			return err
		}
	}
	return nil
}
