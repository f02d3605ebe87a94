// Package dimval is a library for dimensional data keyed by multi-axis
// intervals. A Store holds rows, each a box.Box validity region (one
// interval per axis) paired with a value; all rows in a store are
// disjoint, so every point in the domain is covered by at most one row.
//
// The module is organized as a small stack of packages, each building on
// the one before it:
//
//	domain     the value trait every axis's scalar type satisfies
//	           (Compare, Successor, Predecessor, Min/MaxValue)
//	interval   1-D interval algebra over a domain value: intersect,
//	           union, subtract-with-remainder, gap, adjacency, compress
//	box        N-D box built from a fixed-arity tuple of type-erased
//	           interval axes, plus the generic remainder-tiling
//	           algorithm used to carve rows apart
//	boxtree    a bucketed N-D spatial index accelerating region queries
//	           over a store's rows
//	store      the dimensional store itself: Set/Update/Remove/Fill,
//	           compression, diffing and sync between two snapshots, zip
//	           across two stores, and a copy-on-write Immutable façade
//	mvstore    a store specialization whose payload is a set of values
//	           rather than a single one, with per-element Add/Remove
//	versioned  a façade over store.Store adding a hidden version axis,
//	           an approval workflow (Approve, ApproveAll) for pending
//	           edits, and history-collapsing operations
//
// A typical caller imports domain, interval (to build each axis's
// interval for box.NewAxis), box, and one of store, mvstore, or
// versioned; boxtree is an implementation detail exposed for advanced
// callers building new region algebra on top of box.Box.
package dimval
