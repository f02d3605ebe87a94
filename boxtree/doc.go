// Package boxtree implements a bucketed N-D spatial index: a single
// generic implementation indexed by the arity chosen at construction,
// rather than separate per-arity (quadtree/octree-style)
// specializations, to avoid code duplication across dimension counts.
//
// A Tree buckets entries — (payload, box.Box) pairs — into a root node
// covering an axis-aligned bounding region in ordered-hash space
// (box.Dim.OrderedHashRange). A leaf holds up to the bucket capacity
// (DefaultBucketCapacity unless set with WithBucketCapacity) entries;
// once full it splits into 2^N children, one per octant formed by
// bisecting every axis at its midpoint, and redistributes — an entry
// whose box straddles a split is duplicated into every child it
// intersects, and Query deduplicates by payload identity on the way out.
//
// Insert grows the root toward whichever side an out-of-range entry
// falls on, repeatedly extending that side by half the root's current
// extent on the axis; shrinking on delete is deliberately left
// unimplemented, since nothing observable depends on the root bound
// ever shrinking back down.
//
// Tree is an accelerator only: package store falls back to a linear
// scan over its by-start structure whenever the "noSearchTree"
// capability flag is set, so every store operation remains correct
// with Tree disabled.
package boxtree
