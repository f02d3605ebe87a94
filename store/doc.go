// Package store implements the dimensional store: a collection of
// disjoint N-D boxes each carrying a value, plus the generic
// remainder-tiling mutation engine, compression, diffing, and zip.
//
// A Store owns three indexes over the same rows: an ordered by-start
// slice (deterministic iteration and diffing), a boxtree.Tree
// accelerator for region queries, and an on-demand by-value grouping
// used by compression. Mutators run to completion without
// interleaving; this package guards that with a plain sync.RWMutex
// rather than requiring external synchronisation, mirroring the
// two-lock discipline a graph ADT uses for its vertex/edge maps.
package store
