package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// opKind is the leading letter of a script token.
type opKind byte

const (
	opAlloc opKind = 'a' // a<N>: allocate N bytes
	opFree  opKind = 'f' // f<I>: free the I-th allocation
	opWrite opKind = 'w' // w<I>=<V>: store uint64 V at the start of allocation I
	opRead  opKind = 'r' // r<I>: load the uint64 at the start of allocation I
)

// op is one parsed script token.
type op struct {
	kind opKind
	n    int    // bytes for opAlloc
	idx  int    // allocation index for the other kinds
	val  uint64 // value for opWrite
	raw  string
}

// parseOp parses a single token such as "a16", "f0", "w2=99" or "r2".
func parseOp(tok string) (op, error) {
	if len(tok) < 2 {
		return op{}, fmt.Errorf("bad op %q", tok)
	}
	o := op{kind: opKind(tok[0]), raw: tok}
	arg := tok[1:]

	switch o.kind {
	case opAlloc:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return op{}, fmt.Errorf("bad op %q: %w", tok, err)
		}
		o.n = n
	case opFree, opRead:
		idx, err := parseIndex(arg)
		if err != nil {
			return op{}, fmt.Errorf("bad op %q: %w", tok, err)
		}
		o.idx = idx
	case opWrite:
		idxStr, valStr, ok := strings.Cut(arg, "=")
		if !ok {
			return op{}, fmt.Errorf("bad op %q: expected w<index>=<value>", tok)
		}
		idx, err := parseIndex(idxStr)
		if err != nil {
			return op{}, fmt.Errorf("bad op %q: %w", tok, err)
		}
		val, err := strconv.ParseUint(valStr, 0, 64)
		if err != nil {
			return op{}, fmt.Errorf("bad op %q: %w", tok, err)
		}
		o.idx, o.val = idx, val
	default:
		return op{}, fmt.Errorf("bad op %q: unknown kind %q", tok, tok[0])
	}
	return o, nil
}

func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		return 0, fmt.Errorf("negative index %d", idx)
	}
	return idx, nil
}

// parseOps parses every token, stopping at the first error.
func parseOps(tokens []string) ([]op, error) {
	ops := make([]op, 0, len(tokens))
	for _, tok := range tokens {
		o, err := parseOp(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

// readScript splits a script into tokens. Anything after '#' on a line is ignored.
func readScript(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
