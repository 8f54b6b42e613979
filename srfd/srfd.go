// Package srfd computes the Soft Robinson-Foulds distance between two
// networks sharing a leaf set, by enumerating every non-trivial leaf subset
// and invoking ccp.Run against each network independently.
package srfd

import (
	"errors"
	"math/bits"
	"runtime"
	"sync"

	"github.com/nuslab/phylonet/ccp"
	"github.com/nuslab/phylonet/network"
)

// Report is delivered to a WithPerSubsetReport callback for every subset
// tested, regardless of whether it contributed to the distance.
type Report struct {
	Subset []string
	InN1   bool
	InN2   bool
}

// Option configures a Run call.
type Option func(*config)

type config struct {
	workers int
	report  func(Report)
}

// WithWorkers bounds the number of concurrent CCP invocations. The default
// is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithPerSubsetReport registers a callback invoked once per tested subset,
// from whichever worker goroutine completed it; implementations needing a
// stable order must sort by Subset themselves.
func WithPerSubsetReport(fn func(Report)) Option {
	return func(c *config) { c.report = fn }
}

// Run enumerates every subset of size 1..n-1 over n1's leaves (n2 must
// share the same canonical leaf ordering; netio.CanonicalLeafOrder enforces
// this ahead of time) and returns popcount(res1 XOR res2) / 2, per
// spec.md §6.
func Run(n1, n2 *network.Network, opts ...Option) (float64, error) {
	cfg := &config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	numLeaves := n1.NumLeaves()
	if numLeaves < 2 {
		return 0, nil
	}

	type job struct{ idx []int }
	jobs := make(chan job, cfg.workers*2)

	var wg sync.WaitGroup
	var mu sync.Mutex
	diff := 0
	var firstErr error

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			b1 := network.NewLeafSet(n1, j.idx)
			b2 := network.NewLeafSet(n2, j.idx)

			in1, err1 := classify(n1, b1)
			in2, err2 := classify(n2, b2)

			mu.Lock()
			if firstErr == nil {
				if err1 != nil {
					firstErr = err1
				} else if err2 != nil {
					firstErr = err2
				}
			}
			if err1 == nil && err2 == nil {
				diff += bits.OnesCount(uint(boolToInt(in1) ^ boolToInt(in2)))
			}
			mu.Unlock()

			if cfg.report != nil && err1 == nil && err2 == nil {
				cfg.report(Report{Subset: labelsOf(n1, j.idx), InN1: in1, InN2: in2})
			}
		}
	}

	wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go worker()
	}

	for k := 1; k < numLeaves; k++ {
		idx := firstKSubset(k)
		for {
			cp := append([]int(nil), idx...)
			jobs <- job{idx: cp}
			if !nextKSubset(idx, numLeaves) {
				break
			}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return 0, firstErr
	}

	return float64(diff) / 2, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// classify runs CCP for B against n and reports whether B is a soft
// cluster, collapsing ccp.ErrNotACluster (the normal negative outcome) into
// a plain false rather than an error.
func classify(n *network.Network, B *network.LeafSet) (bool, error) {
	_, err := ccp.Run(n, B)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ccp.ErrNotACluster) {
		return false, nil
	}

	return false, err
}

func labelsOf(n *network.Network, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = n.Label(v)
	}

	return out
}
