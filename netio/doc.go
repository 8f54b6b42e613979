// Package netio provides the edge-list and leaf-file readers that sit
// between raw text input and the network package, plus the canonical
// leaf-order check SRFD requires before comparing two networks.
//
// None of this is part of the CCP/SRFD algorithm itself; it is the "external
// collaborator" spec.md §1 calls out, promoted to a first-class internal
// package per SPEC_FULL.md §4.8.
package netio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nuslab/phylonet/network"
)

// ParseEdgeList reads whitespace-separated "parent child" pairs, one per
// line, into a network.Builder. Blank lines and lines starting with '#' are
// skipped. Unknown vertex labels are created on first mention, per spec.md §6.
func ParseEdgeList(r io.Reader) (*network.Builder, error) {
	b := network.NewBuilder()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedLine, lineNo, len(fields))
		}
		b.AddEdge(fields[0], fields[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netio: reading edge list: %w", err)
	}

	return b, nil
}

// ParseLeafFile reads one leaf label per line and returns the corresponding
// network.LeafSet. Every label must already be a LEAF of n; otherwise
// ErrUnknownLeaf is returned, per spec.md §6's exit-code-10 contract.
func ParseLeafFile(r io.Reader, n *network.Network) (*network.LeafSet, error) {
	byLabel := make(map[string]int, n.NumLeaves())
	for i := 0; i < n.NumLeaves(); i++ {
		byLabel[n.Label(i)] = i
	}

	var indices []int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		label := strings.TrimSpace(sc.Text())
		if label == "" {
			continue
		}
		idx, ok := byLabel[label]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownLeaf, lineNo, label)
		}
		indices = append(indices, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netio: reading leaf file: %w", err)
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: no leaves given", ErrUnknownLeaf)
	}

	return network.NewLeafSet(n, indices), nil
}

// CanonicalLeafOrder reports whether n1 and n2 share exactly the same sorted
// leaf-label list, returning ErrLeafSetMismatch otherwise. SRFD requires
// this: the two networks' leaf indices are only comparable when they were
// assigned from the same sorted label set (network.Builder already sorts
// each network's own leaves independently, so two networks with the same
// label set always agree index-for-index once this check passes).
func CanonicalLeafOrder(n1, n2 *network.Network) error {
	if n1.NumLeaves() != n2.NumLeaves() {
		return fmt.Errorf("%w: %d vs %d leaves", ErrLeafSetMismatch, n1.NumLeaves(), n2.NumLeaves())
	}
	l1 := leafLabels(n1)
	l2 := leafLabels(n2)
	for i := range l1 {
		if l1[i] != l2[i] {
			return fmt.Errorf("%w: first divergence at %q vs %q", ErrLeafSetMismatch, l1[i], l2[i])
		}
	}

	return nil
}

// leafLabels returns a network's leaf labels in index order, which
// network.Builder already guarantees to be lexicographically sorted.
func leafLabels(n *network.Network) []string {
	out := make([]string, n.NumLeaves())
	for i := range out {
		out[i] = n.Label(i)
	}

	return out
}
