package netio

import "errors"

// ErrMalformedLine indicates an edge-list line with other than two
// whitespace-separated fields.
var ErrMalformedLine = errors.New("netio: malformed edge-list line")

// ErrUnknownLeaf indicates a leaf-file label that is not a LEAF of the
// network it was read against, per spec.md §7.
var ErrUnknownLeaf = errors.New("netio: unknown leaf label")

// ErrLeafSetMismatch indicates two networks being compared by SRFD do not
// share the same sorted leaf-label list, per spec.md §7.
var ErrLeafSetMismatch = errors.New("netio: leaf sets do not match")
