package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/blockalloc/alloc"
	"github.com/joshuapare/blockalloc/cmd/blockctl/logger"
	"github.com/joshuapare/blockalloc/internal/buf"
	"github.com/joshuapare/blockalloc/printer"
)

var (
	simSize     int
	simPolicy   string
	simMmap     bool
	simCheck    bool
	simScript   string
	simFreeOnly bool
)

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim [ops...]",
		Short: "Replay allocate/free operations and print the block layout",
		Long: `The sim command creates an allocator, applies each operation in order and
prints the final block layout.

Operations:
  a<N>       allocate N bytes; the result becomes allocation #0, #1, ...
  f<I>       free allocation #I
  w<I>=<V>   store the uint64 V (little-endian) at the start of allocation #I
  r<I>       read the uint64 at the start of allocation #I

Failed operations (out of memory, invalid handle) are reported and the
replay continues.

Example:
  blockctl sim --size 12 a4 a4 a4 f1 f0 f2
  blockctl sim --size 64 --policy best-fit --script ops.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, args)
		},
	}

	cmd.Flags().IntVar(&simSize, "size", 64, "Buffer capacity in bytes")
	cmd.Flags().StringVar(&simPolicy, "policy", alloc.LastFit.Name(), "Selection policy (last-fit, first-fit, best-fit)")
	cmd.Flags().BoolVar(&simMmap, "mmap", false, "Back the buffer with an anonymous mapping")
	cmd.Flags().BoolVar(&simCheck, "check", true, "Validate the block list after every operation")
	cmd.Flags().StringVar(&simScript, "script", "", "Read operations from a file (whitespace separated, # comments)")
	cmd.Flags().BoolVar(&simFreeOnly, "free-only", false, "List only free blocks")
	return cmd
}

func runSim(cmd *cobra.Command, args []string) error {
	tokens := args
	if simScript != "" {
		f, err := os.Open(simScript)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		scripted, err := readScript(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		tokens = append(scripted, tokens...)
	}
	ops, err := parseOps(tokens)
	if err != nil {
		return err
	}

	policy, err := alloc.PolicyByName(simPolicy)
	if err != nil {
		return err
	}
	cfg := &alloc.Config{
		Policy:          policy,
		Backing:         alloc.BackingHeap,
		CheckInvariants: simCheck,
		Logger:          logger.L,
	}
	if simMmap {
		cfg.Backing = alloc.BackingMmap
	}

	ba, err := alloc.New(simSize, cfg)
	if err != nil {
		return fmt.Errorf("failed to create allocator: %w", err)
	}
	defer ba.Close()

	w := cmd.OutOrStdout()
	printVerbose(w, "Allocator: %d bytes, policy %s, %s backing\n", simSize, policy.Name(), cfg.Backing)

	s := newSimulator(ba)
	for _, o := range ops {
		res, err := s.apply(o)
		if err != nil {
			logger.Warn("op failed", "op", o.raw, "err", err)
			res = "error: " + err.Error()
		} else {
			logger.Info("op", "op", o.raw, "result", res)
		}
		if !jsonOut {
			printInfo(w, "%-12s %s\n", o.raw, res)
		}
	}

	if quiet {
		return nil
	}
	if !jsonOut {
		printInfo(w, "\n")
	}
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.FreeOnly = simFreeOnly
	return printer.New(w, opts).PrintLayout(ba)
}

// errNoAllocation is returned for ops naming an allocation index never made.
var errNoAllocation = errors.New("no such allocation")

// simulator applies ops to an allocator, remembering handles by allocation order.
type simulator struct {
	a       alloc.Allocator
	handles []alloc.Handle
}

func newSimulator(a alloc.Allocator) *simulator {
	return &simulator{a: a}
}

// apply runs one op and returns a short description of its outcome.
func (s *simulator) apply(o op) (string, error) {
	switch o.kind {
	case opAlloc:
		h, err := s.a.Allocate(o.n)
		if err != nil {
			return "", err
		}
		s.handles = append(s.handles, h)
		return fmt.Sprintf("#%d at offset %d, %d bytes free", len(s.handles)-1, h, s.a.BytesFree()), nil

	case opFree:
		h, err := s.handle(o.idx)
		if err != nil {
			return "", err
		}
		if err := s.a.Free(h); err != nil {
			return "", err
		}
		return fmt.Sprintf("freed #%d, %d bytes free", o.idx, s.a.BytesFree()), nil

	case opWrite:
		b, err := s.bytes(o.idx)
		if err != nil {
			return "", err
		}
		if !buf.PutU64LE(b, 0, o.val) {
			return "", fmt.Errorf("allocation #%d holds %d bytes, need 8", o.idx, len(b))
		}
		return fmt.Sprintf("#%d = %d", o.idx, o.val), nil

	case opRead:
		b, err := s.bytes(o.idx)
		if err != nil {
			return "", err
		}
		v, ok := buf.U64LE(b, 0)
		if !ok {
			return "", fmt.Errorf("allocation #%d holds %d bytes, need 8", o.idx, len(b))
		}
		return fmt.Sprintf("#%d -> %d", o.idx, v), nil
	}
	return "", fmt.Errorf("unknown op %q", o.raw)
}

func (s *simulator) handle(idx int) (alloc.Handle, error) {
	if idx >= len(s.handles) {
		return 0, fmt.Errorf("%w: #%d", errNoAllocation, idx)
	}
	return s.handles[idx], nil
}

func (s *simulator) bytes(idx int) ([]byte, error) {
	h, err := s.handle(idx)
	if err != nil {
		return nil, err
	}
	return s.a.Bytes(h)
}
