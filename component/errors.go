package component

import "errors"

// ErrCyclic indicates the resolution-dependency level order could not make
// progress while reticulations remained unassigned, meaning the input is
// not a DAG.
var ErrCyclic = errors.New("component: reticulation dependency order is cyclic")
