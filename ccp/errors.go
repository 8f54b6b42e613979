package ccp

import "errors"

// ErrNotACluster is CCP's normal negative outcome: B is not the soft
// cluster of any vertex in the network. It is a value, not a fatal error,
// and callers should branch on it with errors.Is rather than treat it as
// exceptional.
var ErrNotACluster = errors.New("ccp: not a cluster")

// ErrInvariant marks an internal invariant violation (a component with an
// empty tree and no reticulation to skip). It should never occur for a
// network that passed network.Builder validation.
var ErrInvariant = errors.New("ccp: internal invariant violated")
