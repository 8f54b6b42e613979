// Package phylonet is your toolkit for answering two questions about rooted
// phylogenetic networks over a fixed set of labelled leaves.
//
// 🌳 What is phylonet?
//
//	A pure-Go library that brings together:
//
//	  - Network model: immutable vertex/edge graph with derived classification
//	  - Tree-component decomposition and reticulation classification
//	  - Cluster-containment decision procedure (CCP)
//	  - Soft Robinson-Foulds distance (SRFD) between two networks
//
// ✨ Why phylonet?
//
//   - Deterministic    — same network and query always yield the same answer
//   - Concurrent-ready — SRFD fans a subset enumeration out across goroutines,
//     each against its own cloned search state
//   - Pure Go          — no cgo, no hidden dependencies beyond the CLI layer
//
// Everything is organized under subpackages:
//
//	network/   — Network, LeafSet and the leaves-first edge-list builder
//	matrix/    — dense boolean adjacency matrix
//	component/ — tree-component decomposition and reticulation classifier
//	ccp/       — cluster-containment decision procedure
//	srfd/      — soft Robinson-Foulds distance driver
//	netio/     — edge-list / leaf-file parsing
//	cmd/ccp    — `ccp` command-line program
//	cmd/srfd   — `srfd` command-line program
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full design
// rationale.
package phylonet
