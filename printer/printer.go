// Package printer renders allocator block layouts for diagnostics.
package printer

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/blockalloc/alloc"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable table.
	FormatText Format = "text"

	// FormatJSON outputs a JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces before each block row (text format only).
	// Default: 2
	IndentSize int

	// Language selects digit grouping for byte counts (text format only).
	// Default: language.English
	Language language.Tag

	// FreeOnly limits the block listing to free blocks.
	// Default: false
	FreeOnly bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		Language:   language.English,
	}
}

// Source is anything that exposes a capacity and a block snapshot.
// alloc.Allocator satisfies it.
type Source interface {
	Size() int
	Blocks() []alloc.Block
}

// Printer writes block layouts to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
	msg    *message.Printer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintLayout(ba)
func New(w io.Writer, opts Options) *Printer {
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	return &Printer{
		opts:   opts,
		writer: w,
		msg:    message.NewPrinter(opts.Language),
	}
}

// PrintLayout prints the capacity, free space and block list of src.
func (p *Printer) PrintLayout(src Source) error {
	l := summarize(src.Size(), src.Blocks())
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(l)
	case FormatText, "":
		return p.printText(l)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// layout is a computed view of one snapshot.
type layout struct {
	size        int
	bytesFree   int
	freeBlocks  int
	largestFree int
	blocks      []alloc.Block
}

func summarize(size int, blocks []alloc.Block) layout {
	l := layout{size: size, blocks: blocks}
	for _, b := range blocks {
		if b.Free {
			l.bytesFree += b.Len
			l.freeBlocks++
			l.largestFree = max(l.largestFree, b.Len)
		}
	}
	return l
}

// fragmentation is the share of free bytes outside the largest free block.
func (l layout) fragmentation() float64 {
	if l.bytesFree == 0 {
		return 0
	}
	return float64(l.bytesFree-l.largestFree) / float64(l.bytesFree)
}
